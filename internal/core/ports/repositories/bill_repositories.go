package repositories

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillReader defines read operations for bills.
type BillReader interface {
	// ListBills retrieves the page of bills matching the filter, ordered by
	// bill date descending, along with the total match count.
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, int64, error)

	// FindBillByID retrieves a single bill with its payment transactions.
	FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error)
}

// BillWriter defines write operations for bills.
type BillWriter interface {
	// CreateBill persists a new bill, deriving its bill number from the
	// count of prior bills for the khata. The count and insert are atomic:
	// concurrent creates for the same khata never produce duplicate
	// bill numbers. Returns ErrNotFound when the khata does not exist.
	CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error)

	// RecordPayment appends a payment transaction to a bill, adds the
	// amount to its paid amount, and advances its status, atomically.
	RecordPayment(ctx context.Context, billID int64, amount decimal.Decimal, notes *string) (*domain.Bill, error)
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}

// BillRepositoryWithTx extends the facade with transaction capabilities.
type BillRepositoryWithTx interface {
	BillRepositoryFacade
	TransactionManager
}
