package domain

// LocationKind classifies how a cash location stores money.
type LocationKind string

const (
	KindCash   LocationKind = "cash"
	KindVault  LocationKind = "vault"
	KindBank   LocationKind = "bank"
	KindWallet LocationKind = "wallet"
)

// IsBank reports whether the location is a bank account. Bank accounts
// carry a stated balance instead of physical denominations.
func (k LocationKind) IsBank() bool {
	return k == KindBank
}

// CashLocation is immutable reference data describing a place that
// holds cash: a cashier drawer, a vault, a bank account or an online
// wallet. Created and edited by external administration, read-only to
// the reconciliation engine.
type CashLocation struct {
	LocationID   string       `json:"locationID"` // Primary Key (UUID)
	CompanyID    string       `json:"companyID"`
	Name         string       `json:"name"`
	CurrencyCode string       `json:"currencyCode"` // the location's original currency
	Kind         LocationKind `json:"kind"`
	StoreID      string       `json:"storeID"`   // Nullable
	StoreName    string       `json:"storeName"` // Nullable, denormalized for display
}
