package domain

import "time"

// Khata is an account book: the top-level partition under which bills are organized.
type Khata struct {
	KhataID     int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"` // Nullable
	AuditFields
}

// DefaultKhata is the synthetic account book served when the store is empty or
// unreachable, so the khata list is never empty for the UI.
func DefaultKhata() Khata {
	now := time.Now().UTC()
	description := "Primary business khata"
	return Khata{
		KhataID:     1,
		Name:        "Main Account Book",
		Description: &description,
		AuditFields: AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
