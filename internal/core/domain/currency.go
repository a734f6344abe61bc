package domain

// Currency represents a supported currency.
type Currency struct {
	CurrencyID   string `json:"currencyID"`   // Primary Key (UUID)
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}

// CurrencyLookup maps currency IDs to codes, falling back to a default
// code when a reference record is missing so a single bad currency_id
// never blanks a whole view.
type CurrencyLookup struct {
	codes       map[string]string
	defaultCode string
}

// NewCurrencyLookup builds a lookup from a currency list.
func NewCurrencyLookup(currencies []Currency, defaultCode string) CurrencyLookup {
	codes := make(map[string]string, len(currencies))
	for _, c := range currencies {
		codes[c.CurrencyID] = c.CurrencyCode
	}
	return CurrencyLookup{codes: codes, defaultCode: defaultCode}
}

// Code returns the code for a currency ID, or the default code when the
// ID has no mapping.
func (l CurrencyLookup) Code(currencyID string) string {
	if code, ok := l.codes[currencyID]; ok && code != "" {
		return code
	}
	return l.defaultCode
}

// DefaultCode returns the configured fallback currency code.
func (l CurrencyLookup) DefaultCode() string {
	return l.defaultCode
}
