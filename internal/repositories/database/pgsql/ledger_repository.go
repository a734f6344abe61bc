package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/utils/amounts"
)

// PgxLedgerRepository serves the pre-joined yesterday/today streams
// backing the reconciliation drill-down. The day boundary join happens
// in SQL; the engine only sees finished pairs and deltas.
type PgxLedgerRepository struct {
	BaseRepository
}

// snapshotDayBoundsCTE resolves one local calendar day ($3) to its
// instant bounds in the company's timezone. Snapshots must bucket with
// the same zone the movement queries shift record_date by, or rows
// created near midnight land in a different day than their movements.
// $1 is the company ID.
const snapshotDayBoundsCTE = `bounds AS (
				SELECT (($3::date)::timestamp AT TIME ZONE co.timezone) AS day_start,
				       (($3::date + 1)::timestamp AT TIME ZONE co.timezone) AS day_end
				FROM companies co
				WHERE co.company_id = $1
			)`

func newPgxLedgerRepository(db *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetLedgerBalances returns yesterday/today balance pairs per currency
// held at the location on the given local date. Yesterday is the latest
// snapshot strictly before the day; today the latest within it.
func (r *PgxLedgerRepository) GetLedgerBalances(ctx context.Context, companyID, locationID, localDate string) ([]domain.BalancePair, error) {
	query := `
		WITH ` + snapshotDayBoundsCTE + `,
		prior AS (
			SELECT s.denomination_summary, s.current_stock
			FROM balance_snapshots s
			JOIN cash_locations l ON l.location_id = s.location_id
			CROSS JOIN bounds b
			WHERE s.location_id = $2 AND l.company_id = $1 AND s.created_at < b.day_start
			ORDER BY s.created_at DESC
			LIMIT 1
		),
		current AS (
			SELECT s.denomination_summary, s.current_stock
			FROM balance_snapshots s
			JOIN cash_locations l ON l.location_id = s.location_id
			CROSS JOIN bounds b
			WHERE s.location_id = $2 AND l.company_id = $1 AND s.created_at < b.day_end
			ORDER BY s.created_at DESC
			LIMIT 1
		),
		prior_amounts AS (
			SELECT d->>'currency_id' AS currency_id,
			       SUM(COALESCE((d->>'amount')::numeric,
			                    (d->>'value')::numeric * (d->>'quantity')::numeric,
			                    0)) AS balance
			FROM prior s
			CROSS JOIN LATERAL jsonb_array_elements(COALESCE(s.denomination_summary, s.current_stock)) d
			GROUP BY 1
		),
		current_amounts AS (
			SELECT d->>'currency_id' AS currency_id,
			       SUM(COALESCE((d->>'amount')::numeric,
			                    (d->>'value')::numeric * (d->>'quantity')::numeric,
			                    0)) AS balance
			FROM current s
			CROSS JOIN LATERAL jsonb_array_elements(COALESCE(s.denomination_summary, s.current_stock)) d
			GROUP BY 1
		)
		SELECT COALESCE(p.currency_id, c.currency_id) AS currency_id,
		       COALESCE(p.balance, 0)::text AS yesterday_balance,
		       COALESCE(c.balance, 0)::text AS today_balance
		FROM prior_amounts p
		FULL OUTER JOIN current_amounts c ON c.currency_id = p.currency_id
		ORDER BY 1;
	`

	rows, err := r.Pool.Query(ctx, query, companyID, locationID, localDate)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load ledger balances", err)
	}
	defer rows.Close()

	var pairs []domain.BalancePair
	for rows.Next() {
		var currencyID, yesterday, today string
		if err := rows.Scan(&currencyID, &yesterday, &today); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger balance", err)
		}
		pairs = append(pairs, domain.BalancePair{
			CurrencyID:       currencyID,
			YesterdayBalance: amounts.ParseAmount(yesterday),
			TodayBalance:     amounts.ParseAmount(today),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger balances", err)
	}

	return pairs, nil
}

// GetDenominationChanges returns the prior/current denomination join
// for a physical location on one local date. A denomination present on
// only one side comes back with the missing side's quantity at zero.
func (r *PgxLedgerRepository) GetDenominationChanges(ctx context.Context, companyID, locationID, localDate string) ([]domain.DenominationDelta, error) {
	query := `
		WITH ` + snapshotDayBoundsCTE + `,
		prior AS (
			SELECT s.current_stock
			FROM balance_snapshots s
			JOIN cash_locations l ON l.location_id = s.location_id
			CROSS JOIN bounds b
			WHERE s.location_id = $2 AND l.company_id = $1 AND s.created_at < b.day_start
			ORDER BY s.created_at DESC
			LIMIT 1
		),
		current AS (
			SELECT s.current_stock
			FROM balance_snapshots s
			JOIN cash_locations l ON l.location_id = s.location_id
			CROSS JOIN bounds b
			WHERE s.location_id = $2 AND l.company_id = $1 AND s.created_at < b.day_end
			ORDER BY s.created_at DESC
			LIMIT 1
		),
		prior_stock AS (
			SELECT d->>'denomination_id' AS denomination_id,
			       d->>'currency_id' AS currency_id,
			       COALESCE(d->>'value', '') AS value,
			       COALESCE(d->>'quantity', '') AS quantity
			FROM prior s
			CROSS JOIN LATERAL jsonb_array_elements(s.current_stock) d
		),
		current_stock AS (
			SELECT d->>'denomination_id' AS denomination_id,
			       d->>'currency_id' AS currency_id,
			       COALESCE(d->>'value', '') AS value,
			       COALESCE(d->>'quantity', '') AS quantity
			FROM current s
			CROSS JOIN LATERAL jsonb_array_elements(s.current_stock) d
		)
		SELECT COALESCE(c.denomination_id, p.denomination_id) AS denomination_id,
		       COALESCE(c.currency_id, p.currency_id, '') AS currency_id,
		       COALESCE(c.value, p.value, '') AS value,
		       COALESCE(p.quantity, '') AS yesterday_quantity,
		       COALESCE(c.quantity, '') AS today_quantity
		FROM current_stock c
		FULL OUTER JOIN prior_stock p ON p.denomination_id = c.denomination_id
		ORDER BY 1;
	`

	rows, err := r.Pool.Query(ctx, query, companyID, locationID, localDate)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load denomination changes", err)
	}
	defer rows.Close()

	var deltas []domain.DenominationDelta
	for rows.Next() {
		var denominationID, currencyID, value, yesterdayQty, todayQty string
		if err := rows.Scan(&denominationID, &currencyID, &value, &yesterdayQty, &todayQty); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan denomination change", err)
		}

		d := domain.DenominationDelta{
			DenominationID:    denominationID,
			CurrencyID:        currencyID,
			DenominationValue: amounts.ParseAmount(value),
			YesterdayQuantity: amounts.ParseQuantity(yesterdayQty),
			TodayQuantity:     amounts.ParseQuantity(todayQty),
		}
		d.QuantityChange = d.TodayQuantity - d.YesterdayQuantity
		d.YesterdayAmount = d.DenominationValue.Mul(decimal.NewFromInt(d.YesterdayQuantity))
		d.TodayAmount = d.DenominationValue.Mul(decimal.NewFromInt(d.TodayQuantity))
		d.AmountChange = d.TodayAmount.Sub(d.YesterdayAmount)
		deltas = append(deltas, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating denomination changes", err)
	}

	return deltas, nil
}
