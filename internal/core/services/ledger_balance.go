package services

import (
	"sort"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// BuildLedgerBalanceRows turns pre-joined yesterday/today balance pairs
// into the yesterday → change → today presentation, one row per
// currency held at the location. IsMultiCurrency is set on every row
// when the location holds more than one currency; it changes only the
// presentation note, not the math.
func BuildLedgerBalanceRows(pairs []domain.BalancePair, currencies domain.CurrencyLookup) []domain.LedgerBalanceRow {
	if len(pairs) == 0 {
		return []domain.LedgerBalanceRow{}
	}

	multi := len(pairs) > 1
	rows := make([]domain.LedgerBalanceRow, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, domain.LedgerBalanceRow{
			CurrencyID:       p.CurrencyID,
			CurrencyCode:     currencies.Code(p.CurrencyID),
			YesterdayBalance: p.YesterdayBalance,
			TodayBalance:     p.TodayBalance,
			BalanceChange:    p.TodayBalance.Sub(p.YesterdayBalance),
			IsMultiCurrency:  multi,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CurrencyCode < rows[j].CurrencyCode
	})
	return rows
}
