package models

import "time"

// AuditFields embeds the timestamp columns shared by every table.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
