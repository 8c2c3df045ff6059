package models

// Khata represents a row of the khatas table.
type Khata struct {
	KhataID     int64   `db:"khata_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"` // Nullable
	AuditFields
}
