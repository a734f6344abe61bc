package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/models"
	"github.com/storebooks/cash_position_app/internal/utils/mapping"
)

// PgxJournalRepository implements journal line reads using pgxpool.
// Lines come back already scoped to a cash location and local date; the
// join happens here, not in the engine.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(db *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const journalLineSelect = `
	SELECT
		j.journal_id,
		jl.line_id,
		to_char(j.journal_date, 'YYYY-MM-DD') AS local_date,
		COALESCE(j.description, ''),
		COALESCE(j.journal_type, ''),
		COALESCE(jl.description, ''),
		COALESCE(jl.account_name, ''),
		COALESCE(jl.debit::text, ''),
		COALESCE(jl.credit::text, '')
	FROM journal_lines jl
	JOIN journals j ON j.journal_id = jl.journal_id
`

// ListJournalLines returns the lines touching one cash location on one
// local date. Debit/credit come back as text for the zero-coercion
// boundary in the mapping layer.
func (r *PgxJournalRepository) ListJournalLines(ctx context.Context, companyID, locationID, localDate string) ([]domain.JournalLine, error) {
	query := journalLineSelect + `
	WHERE j.company_id = $1
	  AND jl.cash_location_id = $2
	  AND j.journal_date = $3::date
	ORDER BY j.journal_date, j.journal_id, jl.line_id;
	`

	rows, err := r.Pool.Query(ctx, query, companyID, locationID, localDate)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list journal lines", err)
	}
	defer rows.Close()

	var modelLines []models.JournalLine
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.JournalID, &m.LineID, &m.LocalDate, &m.Description,
			&m.JournalType, &m.LineDescription, &m.AccountName, &m.Debit, &m.Credit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line", err)
		}
		modelLines = append(modelLines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal lines", err)
	}

	return mapping.ToDomainJournalLineSlice(modelLines), nil
}

// FindJournalLinesByJournalID returns all lines of a single journal.
func (r *PgxJournalRepository) FindJournalLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := journalLineSelect + `
	WHERE j.journal_id = $1
	ORDER BY jl.line_id;
	`

	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find journal lines", err)
	}
	defer rows.Close()

	var modelLines []models.JournalLine
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.JournalID, &m.LineID, &m.LocalDate, &m.Description,
			&m.JournalType, &m.LineDescription, &m.AccountName, &m.Debit, &m.Credit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line", err)
		}
		modelLines = append(modelLines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal lines", err)
	}

	if len(modelLines) == 0 {
		return nil, apperrors.NewNotFoundError("journal with ID " + journalID + " not found")
	}

	return mapping.ToDomainJournalLineSlice(modelLines), nil
}
