package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLedgerBalanceRows_SingleCurrency(t *testing.T) {
	lookup := testCurrencyLookup()
	pairs := []domain.BalancePair{
		{CurrencyID: "cur-vnd", YesterdayBalance: decimal.NewFromInt(1000000), TodayBalance: decimal.NewFromInt(1250000)},
	}

	rows := services.BuildLedgerBalanceRows(pairs, lookup)

	require.Len(t, rows, 1)
	assert.Equal(t, "VND", rows[0].CurrencyCode)
	assert.True(t, rows[0].BalanceChange.Equal(decimal.NewFromInt(250000)))
	assert.False(t, rows[0].IsMultiCurrency)
}

func TestBuildLedgerBalanceRows_MultiCurrencySortedByCode(t *testing.T) {
	lookup := testCurrencyLookup()
	pairs := []domain.BalancePair{
		{CurrencyID: "cur-vnd", YesterdayBalance: decimal.NewFromInt(500000), TodayBalance: decimal.NewFromInt(400000)},
		{CurrencyID: "cur-usd", YesterdayBalance: decimal.NewFromInt(100), TodayBalance: decimal.NewFromInt(150)},
	}

	rows := services.BuildLedgerBalanceRows(pairs, lookup)

	require.Len(t, rows, 2)
	assert.Equal(t, "USD", rows[0].CurrencyCode)
	assert.Equal(t, "VND", rows[1].CurrencyCode)
	assert.True(t, rows[0].IsMultiCurrency)
	assert.True(t, rows[1].IsMultiCurrency)
	assert.True(t, rows[1].BalanceChange.Equal(decimal.NewFromInt(-100000)))
}

func TestBuildLedgerBalanceRows_BridgeInvariant(t *testing.T) {
	lookup := testCurrencyLookup()
	pairs := []domain.BalancePair{
		{CurrencyID: "cur-vnd", YesterdayBalance: decimal.NewFromFloat(123.45), TodayBalance: decimal.NewFromFloat(200.10)},
	}

	rows := services.BuildLedgerBalanceRows(pairs, lookup)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].YesterdayBalance.Add(rows[0].BalanceChange).Equal(rows[0].TodayBalance))
}

func TestBuildLedgerBalanceRows_Empty(t *testing.T) {
	rows := services.BuildLedgerBalanceRows(nil, testCurrencyLookup())
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}
