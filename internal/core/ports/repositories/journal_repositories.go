package repositories

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// JournalReader defines read operations for journal lines. The engine
// receives line sets already scoped to a location and local date; the
// join happens in the provider's query, not here.
type JournalReader interface {
	// ListJournalLines returns the lines touching one cash location on
	// one local date.
	ListJournalLines(ctx context.Context, companyID, locationID, localDate string) ([]domain.JournalLine, error)

	// FindJournalLinesByJournalID returns all lines of a single journal
	// for the drill-down view.
	FindJournalLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
}
