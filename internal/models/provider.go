package models

// Provider is a row of the providers table.
type Provider struct {
	ProviderNo   string `db:"provider_no"`
	ProviderName string `db:"provider_name"`
	AuditFields
}
