package domain

// Currency represents a known ISO 4217 currency as seen from one locale.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Symbol       string `json:"symbol"`       // e.g., "$", locale dependent
	Precision    int    `json:"precision"`    // standard minor-unit digits, e.g. 2 for USD, 0 for JPY
}
