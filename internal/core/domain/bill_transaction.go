package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillTransaction is a single payment recorded against a bill.
type BillTransaction struct {
	TransactionID int64           `json:"id"`
	BillID        int64           `json:"billId"`
	Amount        decimal.Decimal `json:"amount"` // Strictly positive
	Notes         *string         `json:"notes"`  // Nullable
	CreatedAt     time.Time       `json:"createdAt"`
}
