package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/models"
	"github.com/storebooks/cash_position_app/internal/utils/mapping"
	"github.com/storebooks/cash_position_app/internal/utils/pagination"
)

// PgxCashMovementRepository implements cash movement reads using pgxpool.
//
// Local dates are resolved here, in the query, by shifting the record
// timestamp into the company's timezone. Callers never re-derive them.
type PgxCashMovementRepository struct {
	BaseRepository
}

func newPgxCashMovementRepository(db *pgxpool.Pool) *PgxCashMovementRepository {
	return &PgxCashMovementRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListCashMovements returns all movements touching the company's cash
// locations within the inclusive local-date range.
//
// Amounts are selected as text: the mapping layer coerces empty or
// malformed numerics to zero instead of failing the scan.
func (r *PgxCashMovementRepository) ListCashMovements(ctx context.Context, companyID string, startDate, endDate time.Time) ([]domain.CashMovement, error) {
	query := `
		SELECT
			m.location_id,
			to_char(m.record_date AT TIME ZONE co.timezone, 'YYYY-MM-DD') AS local_date,
			COALESCE(m.amount_base::text, ''),
			COALESCE(m.amount_original::text, ''),
			COALESCE(m.original_currency_id, '')
		FROM cash_movements m
		JOIN companies co ON co.company_id = m.company_id
		WHERE m.company_id = $1
		  AND (m.record_date AT TIME ZONE co.timezone)::date BETWEEN $2::date AND $3::date
		ORDER BY local_date, m.location_id, m.created_at;
	`

	rows, err := r.Pool.Query(ctx, query, companyID,
		startDate.Format(domain.LocalDateLayout), endDate.Format(domain.LocalDateLayout))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list cash movements", err)
	}
	defer rows.Close()

	var modelMovements []models.CashMovement
	for rows.Next() {
		var m models.CashMovement
		err := rows.Scan(&m.LocationID, &m.LocalDate, &m.BaseAmount, &m.OriginalAmount, &m.OriginalCurrencyID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash movement", err)
		}
		modelMovements = append(modelMovements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash movements", err)
	}

	return mapping.ToDomainCashMovementSlice(modelMovements), nil
}

// ListCashMovementsByLocation returns one location's movements, newest
// first, with keyset pagination on (local_date, created_at).
func (r *PgxCashMovementRepository) ListCashMovementsByLocation(ctx context.Context, companyID, locationID string, limit int, nextToken string) ([]domain.CashMovement, string, error) {
	query := `
		SELECT
			m.location_id,
			to_char(m.record_date AT TIME ZONE co.timezone, 'YYYY-MM-DD') AS local_date,
			COALESCE(m.amount_base::text, ''),
			COALESCE(m.amount_original::text, ''),
			COALESCE(m.original_currency_id, ''),
			m.created_at
		FROM cash_movements m
		JOIN companies co ON co.company_id = m.company_id
		WHERE m.company_id = $1 AND m.location_id = $2
	`
	args := []interface{}{companyID, locationID}
	argNum := 3

	if nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(nextToken)
		if err != nil || len(fields) != 2 {
			return nil, "", apperrors.NewValidationError("invalid pagination token")
		}
		cursorCreatedAt, err := time.Parse(time.RFC3339Nano, fields[1])
		if err != nil {
			return nil, "", apperrors.NewValidationError("invalid pagination token")
		}
		query += fmt.Sprintf(`
		  AND ( (m.record_date AT TIME ZONE co.timezone)::date < $%d::date
		     OR ((m.record_date AT TIME ZONE co.timezone)::date = $%d::date AND m.created_at < $%d) )
		`, argNum, argNum, argNum+1)
		args = append(args, fields[0], cursorCreatedAt)
		argNum += 2
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY local_date DESC, m.created_at DESC LIMIT $%d;", argNum)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", apperrors.NewAppError(500, "failed to list cash movements by location", err)
	}
	defer rows.Close()

	var modelMovements []models.CashMovement
	var createdAts []time.Time
	for rows.Next() {
		var m models.CashMovement
		var createdAt time.Time
		err := rows.Scan(&m.LocationID, &m.LocalDate, &m.BaseAmount, &m.OriginalAmount, &m.OriginalCurrencyID, &createdAt)
		if err != nil {
			return nil, "", apperrors.NewAppError(500, "failed to scan cash movement", err)
		}
		modelMovements = append(modelMovements, m)
		createdAts = append(createdAts, createdAt)
	}
	if err := rows.Err(); err != nil {
		return nil, "", apperrors.NewAppError(500, "error iterating cash movements", err)
	}

	var token string
	if len(modelMovements) > limit {
		modelMovements = modelMovements[:limit]
		createdAts = createdAts[:limit]
		last := len(modelMovements) - 1
		token = pagination.EncodeMultiFieldToken(
			modelMovements[last].LocalDate,
			createdAts[last].Format(time.RFC3339Nano),
		)
	}

	return mapping.ToDomainCashMovementSlice(modelMovements), token, nil
}
