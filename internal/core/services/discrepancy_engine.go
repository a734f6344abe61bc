package services

import (
	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// DefaultDiscrepancyTolerance is the absolute tolerance, in base
// currency units, below which a real-vs-journal difference is not
// flagged. It is a fixed epsilon, not relative: relaxing it silently
// hides real mismatches.
var DefaultDiscrepancyTolerance = decimal.NewFromFloat(0.01)

// DiscrepancyEngine cross-checks a cell's physical cash change against
// the accounting net change, converting currencies when the location is
// a bank account denominated in a foreign currency.
type DiscrepancyEngine struct {
	BaseCurrencyCode string
	// MinorUnits is the base currency's number of fractional digits
	// (0 for currencies like VND or KRW).
	MinorUnits int32
	Tolerance  decimal.Decimal
}

// NewDiscrepancyEngine creates an engine with the default tolerance.
func NewDiscrepancyEngine(baseCurrencyCode string, minorUnits int32) DiscrepancyEngine {
	return DiscrepancyEngine{
		BaseCurrencyCode: baseCurrencyCode,
		MinorUnits:       minorUnits,
		Tolerance:        DefaultDiscrepancyTolerance,
	}
}

// DiscrepancyInput bundles the already-fetched facts for one
// (location, local date) cell.
type DiscrepancyInput struct {
	LocationID string
	LocalDate  string
	Kind       domain.LocationKind
	Flows      domain.CashFlowSummary
	Journal    domain.JournalTotals
	// Rate is the resolved as-of exchange rate from the flow's original
	// currency to the base currency. Nil means "no rate found"; it is
	// only consulted on the foreign-currency bank branch.
	Rate *decimal.Decimal
}

// NeedsConversion reports whether a cell requires an exchange-rate
// lookup before reconciling: only bank accounts whose flows are in a
// non-base original currency. The bank check comes first so a
// base-currency bank never attempts a self-to-self rate lookup.
func (e DiscrepancyEngine) NeedsConversion(kind domain.LocationKind, originalCurrencyCode string) bool {
	if !kind.IsBank() {
		return false
	}
	return originalCurrencyCode != "" && originalCurrencyCode != e.BaseCurrencyCode
}

// Reconcile produces the discrepancy report for one cell. It never
// fails: "rate not found" and "no journal lines" are valid, displayable
// states.
func (e DiscrepancyEngine) Reconcile(in DiscrepancyInput) domain.DiscrepancyReport {
	report := domain.DiscrepancyReport{
		LocationID:           in.LocationID,
		LocalDate:            in.LocalDate,
		JournalNetChangeBase: in.Journal.Net,
		OriginalCurrencyCode: in.Flows.OriginalCurrencyCode,
	}

	if !e.NeedsConversion(in.Kind, in.Flows.OriginalCurrencyCode) {
		// Direct branch: movements already carry base-currency flows.
		real := in.Flows.NetBase()
		report.RealChangeBase = &real
		e.finish(&report)
		return report
	}

	// Foreign-currency bank branch.
	report.ConversionApplied = true
	report.RealChangeOriginal = in.Flows.NetOriginal()

	if in.Rate == nil {
		// Without a rate the base-converted figure is not computed at
		// all: an explicit "no rate found" beats a silently wrong zero.
		return report
	}

	rate := *in.Rate
	report.ExchangeRateUsed = &rate
	converted := report.RealChangeOriginal.Mul(rate).RoundBank(e.MinorUnits)
	report.RealChangeBase = &converted
	e.finish(&report)
	return report
}

// finish computes difference and the discrepancy flag once a base
// real-change figure exists.
func (e DiscrepancyEngine) finish(report *domain.DiscrepancyReport) {
	diff := report.RealChangeBase.Sub(report.JournalNetChangeBase)
	report.Difference = &diff
	report.HasDiscrepancy = diff.Abs().GreaterThan(e.Tolerance)
}
