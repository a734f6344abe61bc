package models

// CashMovement is the raw movement row as scanned from the provider.
// Amounts come back as text on purpose: upstream rows occasionally
// carry empty or malformed numerics, and the mapping layer coerces
// those to zero instead of failing the whole scan.
type CashMovement struct {
	LocationID         string `db:"location_id"`
	LocalDate          string `db:"local_date"`
	BaseAmount         string `db:"amount_base"`
	OriginalAmount     string `db:"amount_original"`
	OriginalCurrencyID string `db:"original_currency_id"`
}
