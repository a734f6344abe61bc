package repositories

import (
	"context"
	"time"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
type ExchangeRateReader interface {
	// FindRateAsOf retrieves the applicable rate for a currency pair on
	// a target date: the one with the largest rate_date on or before
	// asOf. Returns apperrors.ErrNotFound when no such rate exists,
	// which callers must treat as a valid outcome.
	FindRateAsOf(ctx context.Context, companyID, fromCurrencyID, toCurrencyID string, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates returns a company's rates, newest first.
	ListExchangeRates(ctx context.Context, companyID string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate, or updates it when one already
	// exists for the same pair and rate date.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities.
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
