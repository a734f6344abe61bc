package repositories

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CashLocationReader defines read operations for cash location
// reference data. Locations are administered externally; the engine
// only reads them.
type CashLocationReader interface {
	// ListCashLocations returns a company's non-deleted cash locations.
	ListCashLocations(ctx context.Context, companyID string) ([]domain.CashLocation, error)

	// FindCashLocation retrieves a single location scoped to a company.
	FindCashLocation(ctx context.Context, companyID, locationID string) (*domain.CashLocation, error)
}
