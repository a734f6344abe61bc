package dto

import (
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// JournalDetailResponse is the drill-down payload for a single journal.
type JournalDetailResponse struct {
	JournalID string               `json:"journalID"`
	Lines     []domain.JournalLine `json:"lines"`
	Totals    domain.JournalTotals `json:"totals"`
}
