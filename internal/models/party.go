package models

// Party represents a row of the parties table.
type Party struct {
	PartyID int64   `db:"party_id"`
	Name    string  `db:"name"`
	Type    string  `db:"party_type"`
	Phone   *string `db:"phone"` // Nullable
	AuditFields
}
