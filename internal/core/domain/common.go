package domain

import "time"

// AuditFields holds the standard timestamps shared by all ledger entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
