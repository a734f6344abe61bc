package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
	"github.com/storebooks/cash_position_app/internal/dto"
)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService *CurrencyService
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService *CurrencyService) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, companyID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	// Input validation (basic format) is handled by DTO binding tags.

	// Additional Service-Level Validations
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}

	// Check if currencies exist
	_, errFrom := s.currencyService.GetCurrencyByID(ctx, req.FromCurrencyID)
	if errFrom != nil {
		if errors.Is(errFrom, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency '%s' not found", apperrors.ErrValidation, req.FromCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate 'from' currency '%s': %w", req.FromCurrencyID, errFrom)
	}

	_, errTo := s.currencyService.GetCurrencyByID(ctx, req.ToCurrencyID)
	if errTo != nil {
		if errors.Is(errTo, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency '%s' not found", apperrors.ErrValidation, req.ToCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate 'to' currency '%s': %w", req.ToCurrencyID, errTo)
	}

	now := time.Now()
	newRateID := uuid.NewString()

	rate := domain.ExchangeRate{
		ExchangeRateID: newRateID,
		CompanyID:      companyID,
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           req.Rate,
		RateDate:       req.RateDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "failed to save exchange rate", "from_currency_id", req.FromCurrencyID, "to_currency_id", req.ToCurrencyID)
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	return &rate, nil
}

// ListExchangeRates returns a company's rates, newest first.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context, companyID string) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// SelectRateAsOf picks the applicable rate from an in-memory set: the
// pair's rate with the largest rate date on or before asOf, or nil when
// no rate qualifies. The repository's FindRateAsOf query applies this
// same rule in SQL (rate_date <= asOf, newest first, limit 1).
func SelectRateAsOf(rates []domain.ExchangeRate, fromCurrencyID, toCurrencyID string, asOf time.Time) *domain.ExchangeRate {
	var best *domain.ExchangeRate
	for i := range rates {
		r := &rates[i]
		if r.FromCurrencyID != fromCurrencyID || r.ToCurrencyID != toCurrencyID {
			continue
		}
		if r.RateDate.After(asOf) {
			continue
		}
		if best == nil || r.RateDate.After(best.RateDate) {
			best = r
		}
	}
	return best
}

// ResolveRateAsOf returns the applicable rate for a pair on a target
// date: the one with the largest rate date on or before asOf.
// apperrors.ErrNotFound is a valid outcome that callers surface as a
// missing rate, not a failure.
func (s *ExchangeRateService) ResolveRateAsOf(ctx context.Context, companyID, fromCurrencyID, toCurrencyID string, asOf time.Time) (*domain.ExchangeRate, error) {
	if fromCurrencyID == toCurrencyID {
		return nil, fmt.Errorf("%w: identity conversion needs no rate", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindRateAsOf(ctx, companyID, fromCurrencyID, toCurrencyID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve exchange rate in service: %w", err)
	}
	return rate, nil
}
