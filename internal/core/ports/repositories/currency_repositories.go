package repositories

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data.
type CurrencyReader interface {
	// ListCurrencies returns all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// FindCurrencyByID retrieves a currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
}
