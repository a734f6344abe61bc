package services

import (
	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// DeriveBalance reduces a location's latest snapshot to a single
// current balance and representative currency.
//
// Bank accounts state their balance directly; physical locations sum
// value × quantity over their counted denominations, taking the first
// denomination's currency as representative. A nil or empty snapshot
// yields a zero balance in the default currency: a location that was
// never counted is a valid state.
func DeriveBalance(snap *domain.BalanceSnapshot, currencies domain.CurrencyLookup) domain.DerivedBalance {
	zero := domain.DerivedBalance{Balance: decimal.Zero, CurrencyCode: currencies.DefaultCode()}
	if snap == nil || snap.Contents == nil {
		return zero
	}

	switch c := snap.Contents.(type) {
	case domain.BankStatedBalance:
		return domain.DerivedBalance{
			Balance:      c.Amount,
			CurrencyCode: currencies.Code(c.CurrencyID),
		}
	case domain.DenominationStock:
		if len(c.Denominations) == 0 {
			return zero
		}
		total := decimal.Zero
		for _, d := range c.Denominations {
			total = total.Add(d.Amount())
		}
		return domain.DerivedBalance{
			Balance:      total,
			CurrencyCode: currencies.Code(c.Denominations[0].CurrencyID),
		}
	default:
		// Contents is a sealed union; an unknown variant means a
		// programming error upstream, treated as an uncounted location.
		return zero
	}
}

// DeriveBalancesByCurrency breaks a physical snapshot down per
// currency, for genuinely multi-currency vaults where a single scalar
// would be currency-ambiguous. Bank snapshots yield a single entry.
func DeriveBalancesByCurrency(snap *domain.BalanceSnapshot, currencies domain.CurrencyLookup) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	if snap == nil || snap.Contents == nil {
		return balances
	}

	switch c := snap.Contents.(type) {
	case domain.BankStatedBalance:
		balances[currencies.Code(c.CurrencyID)] = c.Amount
	case domain.DenominationStock:
		for _, d := range c.Denominations {
			code := currencies.Code(d.CurrencyID)
			balances[code] = balances[code].Add(d.Amount())
		}
	}

	return balances
}
