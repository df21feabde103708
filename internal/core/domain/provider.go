package domain

import (
	"fmt"
)

const ProviderNameMaxLength = 50

// FirstProviderSequence is the counter value behind provider number "0001".
const FirstProviderSequence int64 = 1

// Provider represents a price provider.
type Provider struct {
	ProviderNo   string `json:"providerNo" db:"provider_no"` // zero-padded, e.g. "0001"
	ProviderName string `json:"providerName" db:"provider_name"`
	AuditFields
}

// FormatProviderNo renders an allocated counter value as a provider number.
func FormatProviderNo(seq int64) string {
	return fmt.Sprintf("%04d", seq)
}
