package models

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID   string `db:"currency_id"`
	CurrencyName string `db:"currency_name"`
	AuditFields
}
