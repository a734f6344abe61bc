package models

// JournalLine is the raw journal line row as scanned from the
// provider, debit/credit kept as text for the zero-coercion boundary.
type JournalLine struct {
	JournalID       string `db:"journal_id"`
	LineID          string `db:"line_id"`
	LocalDate       string `db:"local_date"`
	Description     string `db:"description"`
	JournalType     string `db:"journal_type"`
	LineDescription string `db:"line_description"`
	AccountName     string `db:"account_name"`
	Debit           string `db:"debit"`
	Credit          string `db:"credit"`
}
