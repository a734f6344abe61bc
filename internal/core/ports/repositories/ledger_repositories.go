package repositories

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// LedgerReader defines read operations for the pre-joined ledger
// streams backing the drill-down view.
type LedgerReader interface {
	// GetLedgerBalances returns yesterday/today balance pairs per
	// currency held at the location on the given local date.
	GetLedgerBalances(ctx context.Context, companyID, locationID, localDate string) ([]domain.BalancePair, error)

	// GetDenominationChanges returns pre-joined prior/current
	// denomination deltas for a physical location and local date. Bank
	// locations yield an empty slice.
	GetDenominationChanges(ctx context.Context, companyID, locationID, localDate string) ([]domain.DenominationDelta, error)
}
