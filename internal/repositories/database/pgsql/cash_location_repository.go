package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// PgxCashLocationRepository implements cash location reads using pgxpool.
type PgxCashLocationRepository struct {
	BaseRepository
}

func newPgxCashLocationRepository(db *pgxpool.Pool) *PgxCashLocationRepository {
	return &PgxCashLocationRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListCashLocations returns a company's non-deleted cash locations.
func (r *PgxCashLocationRepository) ListCashLocations(ctx context.Context, companyID string) ([]domain.CashLocation, error) {
	query := `
		SELECT
			l.location_id, l.company_id, l.name, l.currency_code, l.location_kind,
			COALESCE(l.store_id, ''), COALESCE(s.name, '')
		FROM cash_locations l
		LEFT JOIN stores s ON s.store_id = l.store_id
		WHERE l.company_id = $1 AND l.deleted_at IS NULL
		ORDER BY COALESCE(s.name, ''), l.name;
	`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list cash locations", err)
	}
	defer rows.Close()

	var locations []domain.CashLocation
	for rows.Next() {
		var loc domain.CashLocation
		var kind string
		err := rows.Scan(
			&loc.LocationID, &loc.CompanyID, &loc.Name, &loc.CurrencyCode, &kind,
			&loc.StoreID, &loc.StoreName,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash location", err)
		}
		loc.Kind = domain.LocationKind(kind)
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash locations", err)
	}

	return locations, nil
}

// FindCashLocation retrieves a single location scoped to a company.
func (r *PgxCashLocationRepository) FindCashLocation(ctx context.Context, companyID, locationID string) (*domain.CashLocation, error) {
	query := `
		SELECT
			l.location_id, l.company_id, l.name, l.currency_code, l.location_kind,
			COALESCE(l.store_id, ''), COALESCE(s.name, '')
		FROM cash_locations l
		LEFT JOIN stores s ON s.store_id = l.store_id
		WHERE l.company_id = $1 AND l.location_id = $2 AND l.deleted_at IS NULL;
	`

	var loc domain.CashLocation
	var kind string
	err := r.Pool.QueryRow(ctx, query, companyID, locationID).Scan(
		&loc.LocationID, &loc.CompanyID, &loc.Name, &loc.CurrencyCode, &kind,
		&loc.StoreID, &loc.StoreName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("cash location with ID " + locationID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find cash location", err)
	}
	loc.Kind = domain.LocationKind(kind)

	return &loc, nil
}
