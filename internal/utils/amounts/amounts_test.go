package amounts_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/utils/amounts"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want decimal.Decimal
	}{
		{"plain integer", "12500000", decimal.NewFromInt(12500000)},
		{"negative", "-350.75", decimal.NewFromFloat(-350.75)},
		{"whitespace padded", "  42 ", decimal.NewFromInt(42)},
		{"empty coerces to zero", "", decimal.Zero},
		{"garbage coerces to zero", "NaN", decimal.Zero},
		{"partial number coerces to zero", "12x00", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := amounts.ParseAmount(tt.raw)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, int64(17), amounts.ParseQuantity("17"))
	assert.Equal(t, int64(0), amounts.ParseQuantity("three"))
	assert.Equal(t, int64(0), amounts.ParseQuantity("2.5"))
	assert.Equal(t, int64(-1), amounts.ParseQuantity("-1"))
}
