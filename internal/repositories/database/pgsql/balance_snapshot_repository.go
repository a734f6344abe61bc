package pgsql

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/utils/amounts"
)

// PgxBalanceSnapshotRepository implements balance snapshot reads using pgxpool.
type PgxBalanceSnapshotRepository struct {
	BaseRepository
}

func newPgxBalanceSnapshotRepository(db *pgxpool.Pool) *PgxBalanceSnapshotRepository {
	return &PgxBalanceSnapshotRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// summaryEntry is the provider shape of one bank denomination-summary
// element. Its first element carries the stated balance.
type summaryEntry struct {
	Amount     json.RawMessage `json:"amount"`
	CurrencyID string          `json:"currency_id"`
}

// stockEntry is the provider shape of one counted denomination.
type stockEntry struct {
	DenominationID string          `json:"denomination_id"`
	CurrencyID     string          `json:"currency_id"`
	Value          json.RawMessage `json:"value"`
	Quantity       json.RawMessage `json:"quantity"`
}

// LatestBalanceSnapshots returns the most recent snapshot per location,
// keyed by location ID. Locations that were never counted are simply
// absent from the map.
func (r *PgxBalanceSnapshotRepository) LatestBalanceSnapshots(ctx context.Context, locationIDs []string) (map[string]domain.BalanceSnapshot, error) {
	query := `
		SELECT DISTINCT ON (location_id)
			location_id, created_at, denomination_summary, current_stock
		FROM balance_snapshots
		WHERE location_id = ANY($1)
		ORDER BY location_id, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, locationIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load balance snapshots", err)
	}
	defer rows.Close()

	snapshots := make(map[string]domain.BalanceSnapshot)
	for rows.Next() {
		var (
			locationID string
			createdAt  time.Time
			summaryRaw []byte
			stockRaw   []byte
		)
		if err := rows.Scan(&locationID, &createdAt, &summaryRaw, &stockRaw); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance snapshot", err)
		}

		snapshots[locationID] = domain.BalanceSnapshot{
			LocationID: locationID,
			CreatedAt:  createdAt,
			Contents:   decodeSnapshotContents(summaryRaw, stockRaw),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance snapshots", err)
	}

	return snapshots, nil
}

// decodeSnapshotContents picks the snapshot variant from the provider's
// two JSONB columns: a non-empty denomination summary means a bank
// stated balance, otherwise the physical stock count applies. Corrupt
// JSON degrades to an empty stock rather than failing the scan.
func decodeSnapshotContents(summaryRaw, stockRaw []byte) domain.SnapshotContents {
	if len(summaryRaw) > 0 {
		var summary []summaryEntry
		if err := json.Unmarshal(summaryRaw, &summary); err == nil && len(summary) > 0 {
			return domain.BankStatedBalance{
				Amount:     amounts.ParseAmount(jsonScalarString(summary[0].Amount)),
				CurrencyID: summary[0].CurrencyID,
			}
		}
	}

	var stock []stockEntry
	if len(stockRaw) > 0 {
		_ = json.Unmarshal(stockRaw, &stock)
	}

	denominations := make([]domain.DenominationCount, 0, len(stock))
	for _, entry := range stock {
		denominations = append(denominations, domain.DenominationCount{
			DenominationID: entry.DenominationID,
			CurrencyID:     entry.CurrencyID,
			Value:          amounts.ParseAmount(jsonScalarString(entry.Value)),
			Quantity:       amounts.ParseQuantity(jsonScalarString(entry.Quantity)),
		})
	}
	return domain.DenominationStock{Denominations: denominations}
}

// jsonScalarString renders a raw JSON scalar as its text content:
// providers store amounts sometimes as numbers, sometimes as quoted
// strings.
func jsonScalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return ""
	}
	return string(raw)
}
