package services

import (
	"context"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// JournalSvcFacade exposes the journal drill-down used when a user
// clicks through from the reconciliation view to a single journal.
type JournalSvcFacade interface {
	// GetJournalLines returns all lines of one journal with their
	// totals.
	GetJournalLines(ctx context.Context, journalID string) ([]domain.JournalLine, domain.JournalTotals, error)
}
