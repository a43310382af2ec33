package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "AED")
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}
