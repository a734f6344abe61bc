package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/models"
	"github.com/storebooks/cash_position_app/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange rate repository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveExchangeRate inserts a rate, or updates it when one already
// exists for the same company, pair and rate date.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if rate.FromCurrencyID == rate.ToCurrencyID {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	modelRate := mapping.ToModelExchangeRate(rate)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	// Check if a rate already exists for this currency pair and date
	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT exchange_rate_id FROM exchange_rates
		WHERE company_id = $1 AND from_currency_id = $2 AND to_currency_id = $3 AND rate_date = $4`,
		modelRate.CompanyID, modelRate.FromCurrencyID, modelRate.ToCurrencyID, modelRate.RateDate,
	).Scan(&existingID)

	if err == nil && existingID != "" {
		_, err = tx.Exec(ctx, `
			UPDATE exchange_rates
			SET rate = $1, last_updated_at = $2, last_updated_by = $3
			WHERE exchange_rate_id = $4`,
			modelRate.Rate, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy, existingID,
		)
	} else if errors.Is(err, pgx.ErrNoRows) {
		_, err = tx.Exec(ctx, `
			INSERT INTO exchange_rates (
				exchange_rate_id, company_id, from_currency_id, to_currency_id, rate, rate_date,
				created_at, created_by, last_updated_at, last_updated_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			modelRate.ExchangeRateID, modelRate.CompanyID, modelRate.FromCurrencyID, modelRate.ToCurrencyID,
			modelRate.Rate, modelRate.RateDate, modelRate.CreatedAt,
			modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
		)
	}

	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}

	return r.Commit(ctx, tx)
}

// FindRateAsOf retrieves the applicable rate for a currency pair on a
// target date: the one with the largest rate_date on or before asOf.
func (r *PgxExchangeRateRepository) FindRateAsOf(ctx context.Context, companyID, fromCurrencyID, toCurrencyID string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, company_id, from_currency_id, to_currency_id, rate, rate_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE company_id = $1 AND from_currency_id = $2 AND to_currency_id = $3
		  AND rate_date <= $4
		ORDER BY rate_date DESC
		LIMIT 1;
	`

	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, companyID, fromCurrencyID, toCurrencyID, asOf).Scan(
		&modelRate.ExchangeRateID, &modelRate.CompanyID, &modelRate.FromCurrencyID, &modelRate.ToCurrencyID,
		&modelRate.Rate, &modelRate.RateDate, &modelRate.CreatedAt,
		&modelRate.CreatedBy, &modelRate.LastUpdatedAt, &modelRate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rate found on or before the target date")
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates retrieves a company's rates, newest first.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, companyID string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, company_id, from_currency_id, to_currency_id, rate, rate_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE company_id = $1
		ORDER BY rate_date DESC, from_currency_id, to_currency_id;
	`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var modelRates []models.ExchangeRate
	for rows.Next() {
		var modelRate models.ExchangeRate
		err := rows.Scan(
			&modelRate.ExchangeRateID, &modelRate.CompanyID, &modelRate.FromCurrencyID, &modelRate.ToCurrencyID,
			&modelRate.Rate, &modelRate.RateDate, &modelRate.CreatedAt,
			&modelRate.CreatedBy, &modelRate.LastUpdatedAt, &modelRate.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		modelRates = append(modelRates, modelRate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}

	domainRates := make([]domain.ExchangeRate, len(modelRates))
	for i, modelRate := range modelRates {
		domainRates[i] = mapping.ToDomainExchangeRate(modelRate)
	}
	return domainRates, nil
}
