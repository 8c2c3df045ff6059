package domain

// PartyType distinguishes who the business trades with on a bill.
type PartyType string

const (
	PartyTypeCustomer PartyType = "CUSTOMER"
	PartyTypeVendor   PartyType = "VENDOR"
)

// Party is a customer or vendor a bill can be associated with.
type Party struct {
	PartyID int64     `json:"id"`
	Name    string    `json:"name"`
	Type    PartyType `json:"type"`
	Phone   *string   `json:"phone"` // Nullable
	AuditFields
}
