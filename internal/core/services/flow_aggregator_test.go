package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCurrencyLookup() domain.CurrencyLookup {
	return domain.NewCurrencyLookup([]domain.Currency{
		{CurrencyID: "cur-vnd", CurrencyCode: "VND"},
		{CurrencyID: "cur-usd", CurrencyCode: "USD"},
	}, "VND")
}

func TestAggregateFlows_SignSplit(t *testing.T) {
	lookup := testCurrencyLookup()
	movements := []domain.CashMovement{
		{LocationID: "loc-1", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(150000), OriginalAmount: decimal.NewFromInt(150000), OriginalCurrencyID: "cur-vnd"},
		{LocationID: "loc-1", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(-50000), OriginalAmount: decimal.NewFromInt(-50000), OriginalCurrencyID: "cur-vnd"},
		{LocationID: "loc-1", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(-20000), OriginalAmount: decimal.NewFromInt(-20000), OriginalCurrencyID: "cur-vnd"},
	}

	summaries := services.AggregateFlows(movements, lookup)

	require.Len(t, summaries, 1)
	s := summaries[domain.FlowKey{LocalDate: "2024-03-15", LocationID: "loc-1"}]
	assert.True(t, s.BaseIn.Equal(decimal.NewFromInt(150000)))
	assert.True(t, s.BaseOut.Equal(decimal.NewFromInt(70000)), "outflows accumulate as absolute values")
	assert.True(t, s.NetBase().Equal(decimal.NewFromInt(80000)))
	assert.Equal(t, "VND", s.OriginalCurrencyCode)
}

func TestAggregateFlows_BucketsByDateAndLocation(t *testing.T) {
	lookup := testCurrencyLookup()
	movements := []domain.CashMovement{
		{LocationID: "loc-1", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(100), OriginalAmount: decimal.NewFromInt(100), OriginalCurrencyID: "cur-vnd"},
		{LocationID: "loc-1", LocalDate: "2024-03-16", BaseAmount: decimal.NewFromInt(200), OriginalAmount: decimal.NewFromInt(200), OriginalCurrencyID: "cur-vnd"},
		{LocationID: "loc-2", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(2500000), OriginalAmount: decimal.NewFromInt(100), OriginalCurrencyID: "cur-usd"},
	}

	summaries := services.AggregateFlows(movements, lookup)

	require.Len(t, summaries, 3)
	usd := summaries[domain.FlowKey{LocalDate: "2024-03-15", LocationID: "loc-2"}]
	assert.Equal(t, "USD", usd.OriginalCurrencyCode)
	assert.True(t, usd.OriginalIn.Equal(decimal.NewFromInt(100)))
	assert.True(t, usd.BaseIn.Equal(decimal.NewFromInt(2500000)))
}

func TestAggregateFlows_Empty(t *testing.T) {
	summaries := services.AggregateFlows(nil, testCurrencyLookup())
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries)
}

func TestAggregateFlows_UnknownCurrencyFallsBack(t *testing.T) {
	lookup := testCurrencyLookup()
	movements := []domain.CashMovement{
		{LocationID: "loc-1", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(100), OriginalAmount: decimal.NewFromInt(100), OriginalCurrencyID: "cur-gone"},
	}

	summaries := services.AggregateFlows(movements, lookup)

	s := summaries[domain.FlowKey{LocalDate: "2024-03-15", LocationID: "loc-1"}]
	assert.Equal(t, "VND", s.OriginalCurrencyCode, "missing reference data falls back to the default code")
}

func TestAggregateFlows_Deterministic(t *testing.T) {
	lookup := testCurrencyLookup()
	movements := []domain.CashMovement{
		{LocationID: "loc-1", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(100), OriginalAmount: decimal.NewFromInt(100), OriginalCurrencyID: "cur-vnd"},
		{LocationID: "loc-1", LocalDate: "2024-03-15", BaseAmount: decimal.NewFromInt(-40), OriginalAmount: decimal.NewFromInt(-40), OriginalCurrencyID: "cur-vnd"},
	}

	first := services.AggregateFlows(movements, lookup)
	second := services.AggregateFlows(movements, lookup)

	assert.Equal(t, first, second)
}
