package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BillType indicates whether a bill records a purchase or a sale.
type BillType string

const (
	BillTypePurchase BillType = "PURCHASE"
	BillTypeSale     BillType = "SALE"
)

// IsValid reports whether the bill type is a member of the closed set.
func (t BillType) IsValid() bool {
	return t == BillTypePurchase || t == BillTypeSale
}

// BillStatus tracks how much of a bill has been settled.
type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusPartial   BillStatus = "PARTIAL"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusCancelled BillStatus = "CANCELLED"
)

// IsValid reports whether the status is a member of the closed set.
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusPartial, BillStatusPaid, BillStatusCancelled:
		return true
	}
	return false
}

// Bill is a purchase or sale record with an amount owed/receivable and
// partial-payment tracking. BillNumber is BILL-<khataID>-<seq> with the
// sequence zero-padded to 4 digits, unique within the khata.
type Bill struct {
	BillID       int64             `json:"id"`
	BillNumber   string            `json:"billNumber"`
	KhataID      int64             `json:"khataId"`
	PartyID      *int64            `json:"partyId"`   // Nullable
	PartyName    *string           `json:"partyName"` // Resolved from Party, nullable
	BillDate     time.Time         `json:"billDate"`
	DueDate      *time.Time        `json:"dueDate"` // Nullable
	Amount       decimal.Decimal   `json:"amount"`  // Strictly positive
	PaidAmount   decimal.Decimal   `json:"paidAmount"`
	Description  *string           `json:"description"` // Nullable
	BillType     BillType          `json:"billType"`
	Status       BillStatus        `json:"status"`
	Transactions []BillTransaction `json:"transactions"`
	AuditFields
}

// FormatBillNumber renders the bill number for a khata and 1-based sequence,
// zero-padding the sequence to 4 digits.
func FormatBillNumber(khataID, sequence int64) string {
	return fmt.Sprintf("BILL-%d-%04d", khataID, sequence)
}

// Outstanding returns the unpaid portion of the bill.
func (b *Bill) Outstanding() decimal.Decimal {
	return b.Amount.Sub(b.PaidAmount)
}

// BillFilter bundles the optional list filters plus the page window.
// Nil fields mean "no constraint"; the date range is inclusive on both ends.
type BillFilter struct {
	KhataID   *int64
	PartyID   *int64
	BillType  *BillType
	Status    *BillStatus
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}
