package domain

import "strings"

const (
	CurrencyIDMaxLength   = 5
	CurrencyNameMaxLength = 9
)

// Currency represents a currency an article can be quoted in.
type Currency struct {
	CurrencyID   string `json:"currencyID" db:"currency_id"` // Primary Key (e.g., "USD")
	CurrencyName string `json:"currencyName" db:"currency_name"`
	AuditFields
}

// NormalizeCurrencyID returns the canonical (upper-case) form of a currency code.
// Lookups by code are case-insensitive.
func NormalizeCurrencyID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
