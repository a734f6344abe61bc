package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileDenominations_OuterJoin(t *testing.T) {
	lookup := testCurrencyLookup()
	prior := map[string]domain.DenominationCount{
		"d-500k": {DenominationID: "d-500k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(500000), Quantity: 10},
		"d-200k": {DenominationID: "d-200k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(200000), Quantity: 5},
	}
	current := map[string]domain.DenominationCount{
		"d-500k": {DenominationID: "d-500k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(500000), Quantity: 12},
		"d-100k": {DenominationID: "d-100k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(100000), Quantity: 7},
	}

	groups := services.ReconcileDenominations(prior, current, lookup)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "VND", g.CurrencyCode)
	require.Len(t, g.Deltas, 3)

	// Largest face value first.
	assert.Equal(t, "d-500k", g.Deltas[0].DenominationID)
	assert.Equal(t, "d-200k", g.Deltas[1].DenominationID)
	assert.Equal(t, "d-100k", g.Deltas[2].DenominationID)

	assert.Equal(t, int64(2), g.Deltas[0].QuantityChange)
	assert.Equal(t, int64(-5), g.Deltas[1].QuantityChange, "denomination gone from current defaults to zero")
	assert.Equal(t, int64(5), g.Deltas[1].YesterdayQuantity)
	assert.Equal(t, int64(0), g.Deltas[1].TodayQuantity)
	assert.Equal(t, int64(7), g.Deltas[2].QuantityChange, "denomination new in current starts from zero")

	assert.True(t, g.YesterdayTotal.Equal(decimal.NewFromInt(6000000)))
	assert.True(t, g.TodayTotal.Equal(decimal.NewFromInt(6700000)))
	assert.True(t, g.ChangeTotal.Equal(decimal.NewFromInt(700000)))
}

func TestReconcileDenominations_GroupsByCurrency(t *testing.T) {
	lookup := testCurrencyLookup()
	prior := map[string]domain.DenominationCount{
		"d-100": {DenominationID: "d-100", CurrencyID: "cur-usd", Value: decimal.NewFromInt(100), Quantity: 2},
	}
	current := map[string]domain.DenominationCount{
		"d-100":  {DenominationID: "d-100", CurrencyID: "cur-usd", Value: decimal.NewFromInt(100), Quantity: 3},
		"d-500k": {DenominationID: "d-500k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(500000), Quantity: 1},
	}

	groups := services.ReconcileDenominations(prior, current, lookup)

	require.Len(t, groups, 2)
	assert.Equal(t, "USD", groups[0].CurrencyCode)
	assert.Equal(t, "VND", groups[1].CurrencyCode)
	assert.True(t, groups[0].ChangeTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, groups[1].ChangeTotal.Equal(decimal.NewFromInt(500000)))
}

func TestReconcileDenominations_Empty(t *testing.T) {
	groups := services.ReconcileDenominations(nil, nil, testCurrencyLookup())
	assert.Empty(t, groups)
	assert.NotNil(t, groups)
}

// The denomination view and the ledger balance view are two renderings
// of the same snapshot pair, so they must foot: per currency, the sum
// of denomination amount changes equals that currency's balance change.
func TestDenominationChangesFootToLedgerBalances(t *testing.T) {
	lookup := testCurrencyLookup()
	prior := map[string]domain.DenominationCount{
		"d-500k": {DenominationID: "d-500k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(500000), Quantity: 10},
		"d-200k": {DenominationID: "d-200k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(200000), Quantity: 5},
		"d-100":  {DenominationID: "d-100", CurrencyID: "cur-usd", Value: decimal.NewFromInt(100), Quantity: 2},
	}
	current := map[string]domain.DenominationCount{
		"d-500k": {DenominationID: "d-500k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(500000), Quantity: 12},
		"d-100k": {DenominationID: "d-100k", CurrencyID: "cur-vnd", Value: decimal.NewFromInt(100000), Quantity: 7},
		"d-100":  {DenominationID: "d-100", CurrencyID: "cur-usd", Value: decimal.NewFromInt(100), Quantity: 3},
	}

	// Balance pairs derived from the very same counts, the way the
	// snapshot expansion sums them per currency.
	sumByCurrency := func(counts map[string]domain.DenominationCount) map[string]decimal.Decimal {
		sums := make(map[string]decimal.Decimal)
		for _, c := range counts {
			sums[c.CurrencyID] = sums[c.CurrencyID].Add(c.Value.Mul(decimal.NewFromInt(c.Quantity)))
		}
		return sums
	}
	priorSums := sumByCurrency(prior)
	currentSums := sumByCurrency(current)
	var pairs []domain.BalancePair
	for _, currencyID := range []string{"cur-usd", "cur-vnd"} {
		pairs = append(pairs, domain.BalancePair{
			CurrencyID:       currencyID,
			YesterdayBalance: priorSums[currencyID],
			TodayBalance:     currentSums[currencyID],
		})
	}

	groups := services.ReconcileDenominations(prior, current, lookup)
	rows := services.BuildLedgerBalanceRows(pairs, lookup)

	require.Len(t, groups, 2)
	require.Len(t, rows, 2)
	for i, g := range groups {
		row := rows[i]
		require.Equal(t, g.CurrencyCode, row.CurrencyCode)
		assert.True(t, g.YesterdayTotal.Equal(row.YesterdayBalance), "%s yesterday totals must foot", g.CurrencyCode)
		assert.True(t, g.TodayTotal.Equal(row.TodayBalance), "%s today totals must foot", g.CurrencyCode)
		assert.True(t, g.ChangeTotal.Equal(row.BalanceChange), "%s change totals must foot", g.CurrencyCode)
	}

	// Spot-check the fixture is not degenerate.
	assert.True(t, groups[1].ChangeTotal.Equal(decimal.NewFromInt(700000)))
	assert.True(t, rows[0].BalanceChange.Equal(decimal.NewFromInt(100)))
}

func TestGroupDenominationDeltas(t *testing.T) {
	lookup := testCurrencyLookup()
	deltas := []domain.DenominationDelta{
		{
			DenominationID:    "d-200k",
			CurrencyID:        "cur-vnd",
			DenominationValue: decimal.NewFromInt(200000),
			YesterdayQuantity: 5,
			TodayQuantity:     4,
			QuantityChange:    -1,
			YesterdayAmount:   decimal.NewFromInt(1000000),
			TodayAmount:       decimal.NewFromInt(800000),
			AmountChange:      decimal.NewFromInt(-200000),
		},
		{
			DenominationID:    "d-500k",
			CurrencyID:        "cur-vnd",
			DenominationValue: decimal.NewFromInt(500000),
			YesterdayQuantity: 1,
			TodayQuantity:     2,
			QuantityChange:    1,
			YesterdayAmount:   decimal.NewFromInt(500000),
			TodayAmount:       decimal.NewFromInt(1000000),
			AmountChange:      decimal.NewFromInt(500000),
		},
	}

	groups := services.GroupDenominationDeltas(deltas, lookup)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "VND", g.CurrencyCode, "blank currency codes are filled from the lookup")
	require.Len(t, g.Deltas, 2)
	assert.Equal(t, "d-500k", g.Deltas[0].DenominationID)
	assert.True(t, g.YesterdayTotal.Equal(decimal.NewFromInt(1500000)))
	assert.True(t, g.TodayTotal.Equal(decimal.NewFromInt(1800000)))
	assert.True(t, g.ChangeTotal.Equal(decimal.NewFromInt(300000)))
}
