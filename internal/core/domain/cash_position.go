package domain

import "github.com/shopspring/decimal"

// CashPositionMatrix is the spreadsheet-style overview: every location
// as a column, every local date in range as a row, plus each location's
// current derived balance. The DTO layer flattens the maps for the
// wire; struct keys keep the engine side type-safe.
type CashPositionMatrix struct {
	Locations []CashLocation              // sorted store name, then location name
	Dates     []string                    // ascending local dates with activity
	Flows     map[FlowKey]CashFlowSummary // per-(date, location) summaries
	Balances  map[string]DerivedBalance   // location ID → current balance
	// Breakdown carries per-currency balances for multi-currency
	// physical locations, location ID → currency code → balance.
	Breakdown map[string]map[string]decimal.Decimal
}
