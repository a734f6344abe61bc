package services

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CurrencySvcFacade defines currency reference data operations.
type CurrencySvcFacade interface {
	// ListCurrencies returns all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetCurrencyByID retrieves a single currency.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// Lookup builds the id→code lookup used throughout the engine,
	// with the company base currency as fallback code.
	Lookup(ctx context.Context) (domain.CurrencyLookup, error)
}
