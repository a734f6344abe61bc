package repositories

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// BalanceSnapshotReader defines read operations for physical balance
// snapshots.
type BalanceSnapshotReader interface {
	// LatestBalanceSnapshots returns the most recent snapshot per
	// location, keyed by location ID. Locations that were never counted
	// are simply absent from the map.
	LatestBalanceSnapshots(ctx context.Context, locationIDs []string) (map[string]domain.BalanceSnapshot, error)
}
