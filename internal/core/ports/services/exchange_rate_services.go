package services

import (
	"context"
	"time"

	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/dto"
)

// ExchangeRateSvcFacade defines the exchange rate operations exposed to
// handlers and to the reconciliation core.
type ExchangeRateSvcFacade interface {
	// CreateExchangeRate validates and persists a new rate.
	CreateExchangeRate(ctx context.Context, companyID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// ListExchangeRates returns a company's rates, newest first.
	ListExchangeRates(ctx context.Context, companyID string) ([]domain.ExchangeRate, error)

	// ResolveRateAsOf returns the applicable rate for a pair on a
	// target date, or apperrors.ErrNotFound, which is a valid,
	// displayable outcome. Identity pairs are rejected with apperrors.ErrValidation;
	// callers special-case same-currency conversion upstream.
	ResolveRateAsOf(ctx context.Context, companyID, fromCurrencyID, toCurrencyID string, asOf time.Time) (*domain.ExchangeRate, error)
}
