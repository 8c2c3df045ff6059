package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents a row of the bills table. PartyName is populated by the
// list/find queries via a join on parties; it has no column of its own.
type Bill struct {
	BillID      int64           `db:"bill_id"`
	BillNumber  string          `db:"bill_number"`
	KhataID     int64           `db:"khata_id"`
	PartyID     *int64          `db:"party_id"` // Nullable FK
	PartyName   *string         `db:"-"`
	BillDate    time.Time       `db:"bill_date"`
	DueDate     *time.Time      `db:"due_date"` // Nullable
	Amount      decimal.Decimal `db:"amount"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	Description *string         `db:"description"` // Nullable
	BillType    string          `db:"bill_type"`
	Status      string          `db:"status"`
	AuditFields
}

// BillTransaction represents a row of the bill_transactions table.
type BillTransaction struct {
	TransactionID int64           `db:"transaction_id"`
	BillID        int64           `db:"bill_id"`
	Amount        decimal.Decimal `db:"amount"`
	Notes         *string         `db:"notes"` // Nullable
	CreatedAt     time.Time       `db:"created_at"`
}
