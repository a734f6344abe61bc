// Package amounts centralizes the numeric-corruption policy for raw
// provider rows: unparsable amounts contribute zero, they never
// propagate as errors or NaN into aggregation sums.
package amounts

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw textual amount to a decimal, coercing
// empty or malformed input to zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity converts a raw textual piece count to an int64,
// coercing malformed input to zero. Fractional quantities are invalid
// for bill/coin counts and also coerce to zero.
func ParseQuantity(raw string) int64 {
	d := ParseAmount(raw)
	if !d.IsInteger() {
		return 0
	}
	return d.IntPart()
}
