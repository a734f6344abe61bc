package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// ReconcileDenominations joins the prior and current denomination
// counts of a physical location by denomination ID and computes the
// per-denomination quantity and amount deltas, grouped by currency with
// per-group totals.
//
// A denomination present on only one side defaults the missing side's
// quantity to zero: bills appearing or disappearing entirely is a valid
// state, not an error. Bank locations have no physical denominations;
// callers skip them.
func ReconcileDenominations(prior, current map[string]domain.DenominationCount, currencies domain.CurrencyLookup) []domain.DenominationGroup {
	ids := make(map[string]struct{}, len(prior)+len(current))
	for id := range prior {
		ids[id] = struct{}{}
	}
	for id := range current {
		ids[id] = struct{}{}
	}

	grouped := make(map[string][]domain.DenominationDelta)
	for id := range ids {
		p, hadPrior := prior[id]
		c, hasCurrent := current[id]

		// Face value and currency come from whichever side exists;
		// current wins when both do.
		ref := c
		if !hasCurrent {
			ref = p
		}

		var yesterdayQty, todayQty int64
		if hadPrior {
			yesterdayQty = p.Quantity
		}
		if hasCurrent {
			todayQty = c.Quantity
		}

		yesterdayAmount := ref.Value.Mul(decimal.NewFromInt(yesterdayQty))
		todayAmount := ref.Value.Mul(decimal.NewFromInt(todayQty))

		code := currencies.Code(ref.CurrencyID)
		grouped[code] = append(grouped[code], domain.DenominationDelta{
			DenominationID:    id,
			CurrencyID:        ref.CurrencyID,
			CurrencyCode:      code,
			DenominationValue: ref.Value,
			YesterdayQuantity: yesterdayQty,
			TodayQuantity:     todayQty,
			QuantityChange:    todayQty - yesterdayQty,
			YesterdayAmount:   yesterdayAmount,
			TodayAmount:       todayAmount,
			AmountChange:      todayAmount.Sub(yesterdayAmount),
		})
	}

	groups := make([]domain.DenominationGroup, 0, len(grouped))
	for code, deltas := range grouped {
		sort.Slice(deltas, func(i, j int) bool {
			// Largest face value first, matching how counts are read out.
			return deltas[i].DenominationValue.GreaterThan(deltas[j].DenominationValue)
		})

		g := domain.DenominationGroup{CurrencyCode: code, Deltas: deltas}
		for _, d := range deltas {
			g.YesterdayTotal = g.YesterdayTotal.Add(d.YesterdayAmount)
			g.TodayTotal = g.TodayTotal.Add(d.TodayAmount)
			g.ChangeTotal = g.ChangeTotal.Add(d.AmountChange)
		}
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CurrencyCode < groups[j].CurrencyCode
	})
	return groups
}

// GroupDenominationDeltas regroups pre-joined deltas from the ledger
// stream into per-currency groups with totals, for providers that hand
// back already-reconciled rows.
func GroupDenominationDeltas(deltas []domain.DenominationDelta, currencies domain.CurrencyLookup) []domain.DenominationGroup {
	grouped := make(map[string][]domain.DenominationDelta)
	for _, d := range deltas {
		if d.CurrencyCode == "" {
			d.CurrencyCode = currencies.Code(d.CurrencyID)
		}
		grouped[d.CurrencyCode] = append(grouped[d.CurrencyCode], d)
	}

	groups := make([]domain.DenominationGroup, 0, len(grouped))
	for code, ds := range grouped {
		sort.Slice(ds, func(i, j int) bool {
			return ds[i].DenominationValue.GreaterThan(ds[j].DenominationValue)
		})
		g := domain.DenominationGroup{CurrencyCode: code, Deltas: ds}
		for _, d := range ds {
			g.YesterdayTotal = g.YesterdayTotal.Add(d.YesterdayAmount)
			g.TodayTotal = g.TodayTotal.Add(d.TodayAmount)
			g.ChangeTotal = g.ChangeTotal.Add(d.AmountChange)
		}
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CurrencyCode < groups[j].CurrencyCode
	})
	return groups
}
