package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DenominationCount is one bill or coin face value with its counted
// quantity inside a physical stock snapshot.
type DenominationCount struct {
	DenominationID string          `json:"denominationID"`
	CurrencyID     string          `json:"currencyID"`
	Value          decimal.Decimal `json:"value"`    // face value of the bill/coin
	Quantity       int64           `json:"quantity"` // counted pieces
}

// Amount returns value × quantity for this denomination line.
func (d DenominationCount) Amount() decimal.Decimal {
	return d.Value.Mul(decimal.NewFromInt(d.Quantity))
}

// SnapshotContents is the tagged union of balance representations.
// A bank account states a single balance figure; a physical location
// (cash drawer, vault, wallet float) is counted denomination by
// denomination. The marker method seals the set of variants so the
// deriver can match exhaustively.
type SnapshotContents interface {
	snapshotContents()
}

// BankStatedBalance is the bank-account variant: the first element of
// the provider's denomination summary carries the stated balance in the
// account's original currency.
type BankStatedBalance struct {
	Amount     decimal.Decimal `json:"amount"`
	CurrencyID string          `json:"currencyID"`
}

func (BankStatedBalance) snapshotContents() {}

// DenominationStock is the physical variant: the full bill/coin count
// of the location at snapshot time.
type DenominationStock struct {
	Denominations []DenominationCount `json:"denominations"`
}

func (DenominationStock) snapshotContents() {}

// BalanceSnapshot is the most recent physical-balance record for a
// location. Exactly one snapshot is current per location: the one with
// the latest creation timestamp, stable ordering being the provider's
// responsibility.
type BalanceSnapshot struct {
	LocationID string           `json:"locationID"`
	CreatedAt  time.Time        `json:"createdAt"`
	Contents   SnapshotContents `json:"contents"`
}

// DerivedBalance is a location's current balance reduced to a single
// figure plus its representative currency.
type DerivedBalance struct {
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
}
