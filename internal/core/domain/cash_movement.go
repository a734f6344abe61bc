package domain

import (
	"github.com/shopspring/decimal"
)

// CashMovement is a single recorded flow touching a cash location.
// Amounts are signed; LocalDate is the calendar day the movement is
// attributed to after the provider's timezone conversion. Movements are
// never mutated, only aggregated.
type CashMovement struct {
	LocationID         string          `json:"locationID"`
	LocalDate          string          `json:"localDate"` // YYYY-MM-DD
	BaseAmount         decimal.Decimal `json:"baseAmount"`
	OriginalAmount     decimal.Decimal `json:"originalAmount"`
	OriginalCurrencyID string          `json:"originalCurrencyID"`
}

// FlowKey is the composite aggregation key for flow summaries.
type FlowKey struct {
	LocalDate  string
	LocationID string
}

// CashFlowSummary is the per-(date, location) net movement view: total
// in and total out, in both the company base currency and the
// movement's original currency. All four totals are non-negative.
type CashFlowSummary struct {
	BaseIn               decimal.Decimal `json:"baseIn"`
	BaseOut              decimal.Decimal `json:"baseOut"`
	OriginalIn           decimal.Decimal `json:"originalIn"`
	OriginalOut          decimal.Decimal `json:"originalOut"`
	OriginalCurrencyCode string          `json:"originalCurrencyCode"`
}

// NetBase returns BaseIn − BaseOut.
func (s CashFlowSummary) NetBase() decimal.Decimal {
	return s.BaseIn.Sub(s.BaseOut)
}

// NetOriginal returns OriginalIn − OriginalOut.
func (s CashFlowSummary) NetOriginal() decimal.Decimal {
	return s.OriginalIn.Sub(s.OriginalOut)
}
