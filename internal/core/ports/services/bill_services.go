package services

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
)

// BillReaderSvc defines read operations for bills.
type BillReaderSvc interface {
	// ListBills retrieves a page of bills matching the filter plus the
	// total match count.
	ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, int64, error)

	// GetBillByID retrieves a single bill with its payment transactions.
	GetBillByID(ctx context.Context, billID int64) (*domain.Bill, error)
}

// BillWriterSvc defines write operations for bills.
type BillWriterSvc interface {
	// CreateBill validates the request and persists a new PENDING bill
	// with a derived bill number and zero paid amount.
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error)

	// RecordPayment records a payment against a bill and advances its
	// status to PARTIAL or PAID.
	RecordPayment(ctx context.Context, billID int64, req dto.RecordPaymentRequest) (*domain.Bill, error)
}

// BillSvcFacade combines all bill service interfaces.
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
