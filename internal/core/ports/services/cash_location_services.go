package services

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CashLocationSvcFacade defines cash location reference data operations.
type CashLocationSvcFacade interface {
	// ListCashLocations returns a company's locations sorted by store
	// name then location name.
	ListCashLocations(ctx context.Context, companyID string) ([]domain.CashLocation, error)

	// GetCashLocation retrieves a single location scoped to a company.
	GetCashLocation(ctx context.Context, companyID, locationID string) (*domain.CashLocation, error)
}
