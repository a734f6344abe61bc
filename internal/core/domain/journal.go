package domain

import (
	"github.com/shopspring/decimal"
)

// JournalLine is an immutable ledger fact: one already-classified
// debit/credit line scoped to a cash location and local date by the
// data provider. Both amounts are non-negative and expressed in the
// company base currency. The engine only reads and sums these.
type JournalLine struct {
	JournalID       string          `json:"journalID"`
	LineID          string          `json:"lineID"`
	LocalDate       string          `json:"localDate"`
	Description     string          `json:"description"` // journal-level description
	JournalType     string          `json:"journalType"`
	LineDescription string          `json:"lineDescription"`
	AccountName     string          `json:"accountName"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
}

// JournalTotals is the accounting view of a day's net change at a
// location: Σdebit, Σcredit and their difference.
type JournalTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	Net    decimal.Decimal `json:"net"` // Debit − Credit
}
