package domain

import (
	"github.com/shopspring/decimal"
)

// DiscrepancyReport answers "does the physical cash change match the
// books?" for one (location, local date) cell.
//
// RealChangeBase and Difference are nil exactly when a foreign-currency
// bank conversion was required but no exchange rate was found: the
// report then shows the original-currency change and an explicit
// "no rate" state instead of a silently wrong zero.
type DiscrepancyReport struct {
	LocationID           string           `json:"locationID"`
	LocalDate            string           `json:"localDate"`
	RealChangeBase       *decimal.Decimal `json:"realChangeBase"`
	JournalNetChangeBase decimal.Decimal  `json:"journalNetChangeBase"`
	Difference           *decimal.Decimal `json:"difference"` // RealChangeBase − JournalNetChangeBase
	HasDiscrepancy       bool             `json:"hasDiscrepancy"`

	// Conversion details, populated only when the foreign-currency bank
	// branch applied.
	ConversionApplied    bool             `json:"conversionApplied"`
	OriginalCurrencyCode string           `json:"originalCurrencyCode"`
	ExchangeRateUsed     *decimal.Decimal `json:"exchangeRateUsed"`
	RealChangeOriginal   decimal.Decimal  `json:"realChangeOriginal"`
}

// BalancePair is a currency's balance at two points in time: start of
// day ("yesterday") and current ("today"). Provided pre-joined by the
// ledger stream.
type BalancePair struct {
	CurrencyID       string          `json:"currencyID"`
	YesterdayBalance decimal.Decimal `json:"yesterdayBalance"`
	TodayBalance     decimal.Decimal `json:"todayBalance"`
}

// LedgerBalanceRow is the yesterday → change → today presentation of a
// currency held at a location.
// Invariant: YesterdayBalance + BalanceChange == TodayBalance.
type LedgerBalanceRow struct {
	CurrencyID       string          `json:"currencyID"`
	CurrencyCode     string          `json:"currencyCode"`
	YesterdayBalance decimal.Decimal `json:"yesterdayBalance"`
	TodayBalance     decimal.Decimal `json:"todayBalance"`
	BalanceChange    decimal.Decimal `json:"balanceChange"`
	IsMultiCurrency  bool            `json:"isMultiCurrency"`
}

// DenominationDelta is the per-denomination quantity change between the
// prior and current physical counts at a location.
type DenominationDelta struct {
	DenominationID    string          `json:"denominationID"`
	CurrencyID        string          `json:"currencyID"`
	CurrencyCode      string          `json:"currencyCode"`
	DenominationValue decimal.Decimal `json:"denominationValue"`
	YesterdayQuantity int64           `json:"yesterdayQuantity"`
	TodayQuantity     int64           `json:"todayQuantity"`
	QuantityChange    int64           `json:"quantityChange"` // today − yesterday
	YesterdayAmount   decimal.Decimal `json:"yesterdayAmount"`
	TodayAmount       decimal.Decimal `json:"todayAmount"`
	AmountChange      decimal.Decimal `json:"amountChange"`
}

// DenominationGroup collects a currency's denomination deltas with
// per-currency totals. Σ(group AmountChange) is expected to equal that
// currency's LedgerBalanceRow.BalanceChange.
type DenominationGroup struct {
	CurrencyCode   string              `json:"currencyCode"`
	Deltas         []DenominationDelta `json:"deltas"`
	YesterdayTotal decimal.Decimal     `json:"yesterdayTotal"`
	TodayTotal     decimal.Decimal     `json:"todayTotal"`
	ChangeTotal    decimal.Decimal     `json:"changeTotal"`
}

// CashPositionDetail is the engine's full output contract for a drill-
// down: the discrepancy report plus the three supplementary lists. Each
// section carries its own availability flag so one failed fetch never
// blanks the others.
type CashPositionDetail struct {
	Report        *DiscrepancyReport  `json:"report"`
	LedgerRows    []LedgerBalanceRow  `json:"ledgerRows"`
	Denominations []DenominationGroup `json:"denominations"`
	JournalLines  []JournalLine       `json:"journalLines"`

	JournalAvailable      bool `json:"journalAvailable"`
	RateAvailable         bool `json:"rateAvailable"` // the lookup ran; a found-vs-missing rate is in the report
	LedgerAvailable       bool `json:"ledgerAvailable"`
	DenominationAvailable bool `json:"denominationAvailable"`
}
