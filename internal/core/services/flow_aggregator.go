package services

import (
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// AggregateFlows folds raw cash movements into per-(date, location)
// flow summaries. Positive base amounts accumulate into BaseIn,
// negative ones into BaseOut as absolute values, mirrored for the
// original-currency pair, so all four totals stay non-negative.
//
// The summary's original currency code is overwritten by each row
// (last write wins). Rows in one bucket are expected to share a single
// original currency; when they do not, the code reflects only the most
// recently processed row. That is a known simplification carried over
// from the source data shape, not an invariant.
func AggregateFlows(movements []domain.CashMovement, currencies domain.CurrencyLookup) map[domain.FlowKey]domain.CashFlowSummary {
	summaries := make(map[domain.FlowKey]domain.CashFlowSummary, len(movements))

	for _, m := range movements {
		key := domain.FlowKey{LocalDate: m.LocalDate, LocationID: m.LocationID}
		s, ok := summaries[key]
		if !ok {
			s = domain.CashFlowSummary{OriginalCurrencyCode: currencies.DefaultCode()}
		}

		if m.BaseAmount.IsPositive() {
			s.BaseIn = s.BaseIn.Add(m.BaseAmount)
		} else {
			s.BaseOut = s.BaseOut.Add(m.BaseAmount.Abs())
		}

		if m.OriginalAmount.IsPositive() {
			s.OriginalIn = s.OriginalIn.Add(m.OriginalAmount)
		} else {
			s.OriginalOut = s.OriginalOut.Add(m.OriginalAmount.Abs())
		}

		if m.OriginalCurrencyID != "" {
			s.OriginalCurrencyCode = currencies.Code(m.OriginalCurrencyID)
		}

		summaries[key] = s
	}

	return summaries
}
