package services

import (
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// SumJournalLines folds a location-and-date-scoped line set into the
// accounting view of the day: Σdebit, Σcredit and net = debit − credit.
// An empty set yields zeros, which is a displayable state.
func SumJournalLines(lines []domain.JournalLine) domain.JournalTotals {
	var t domain.JournalTotals
	for _, l := range lines {
		t.Debit = t.Debit.Add(l.Debit)
		t.Credit = t.Credit.Add(l.Credit)
	}
	t.Net = t.Debit.Sub(t.Credit)
	return t
}
