package domain

// User is an authenticated operator of the ledger.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never serialized
	AuditFields
}
