package domain

import "time"

// AuditFields holds the bookkeeping every record carries.
// Records are never removed by the API; IsDeleted hides them from default reads.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	IsDeleted bool      `json:"isDeleted" db:"is_deleted"`
}
