package services

import (
	"context"
	"fmt"

	"github.com/storebooks/cash_position_app/internal/core/domain"
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
)

// CurrencyService provides currency reference data and the id-to-code
// lookup the reconciliation engine works with.
type CurrencyService struct {
	BaseService
	currencyRepo     portsrepo.CurrencyReader
	baseCurrencyCode string
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyReader, baseCurrencyCode string) *CurrencyService {
	return &CurrencyService{
		currencyRepo:     currencyRepo,
		baseCurrencyCode: baseCurrencyCode,
	}
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by ID in service: %w", err)
	}
	return currency, nil
}

// Lookup builds the id-to-code lookup with the base currency code as
// fallback for unknown IDs.
func (s *CurrencyService) Lookup(ctx context.Context) (domain.CurrencyLookup, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return domain.NewCurrencyLookup(nil, s.baseCurrencyCode), fmt.Errorf("failed to build currency lookup: %w", err)
	}
	return domain.NewCurrencyLookup(currencies, s.baseCurrencyCode), nil
}
