package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/storebooks/cash_position_app/internal/core/domain"
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
)

// CashLocationService provides cash location reference data.
type CashLocationService struct {
	BaseService
	locationRepo portsrepo.CashLocationReader
}

func NewCashLocationService(locationRepo portsrepo.CashLocationReader) *CashLocationService {
	return &CashLocationService{locationRepo: locationRepo}
}

func (s *CashLocationService) ListCashLocations(ctx context.Context, companyID string) ([]domain.CashLocation, error) {
	locations, err := s.locationRepo.ListCashLocations(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash locations in service: %w", err)
	}
	// Stable display order: store name first, location name second.
	sort.SliceStable(locations, func(i, j int) bool {
		if locations[i].StoreName != locations[j].StoreName {
			return locations[i].StoreName < locations[j].StoreName
		}
		return locations[i].Name < locations[j].Name
	})
	if locations == nil {
		return []domain.CashLocation{}, nil
	}
	return locations, nil
}

func (s *CashLocationService) GetCashLocation(ctx context.Context, companyID, locationID string) (*domain.CashLocation, error) {
	location, err := s.locationRepo.FindCashLocation(ctx, companyID, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash location in service: %w", err)
	}
	return location, nil
}
