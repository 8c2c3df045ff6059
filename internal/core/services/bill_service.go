package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

type billService struct {
	billRepo portsrepo.BillRepositoryFacade
}

// NewBillService creates the bill service.
func NewBillService(billRepo portsrepo.BillRepositoryFacade) portssvc.BillSvcFacade {
	return &billService{billRepo: billRepo}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// ListBills retrieves a page of bills matching the filter.
func (s *billService) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, int64, error) {
	bills, total, err := s.billRepo.ListBills(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills in service: %w", err)
	}
	return bills, total, nil
}

// GetBillByID retrieves a single bill with its payment transactions.
func (s *billService) GetBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill in service: %w", err)
	}
	return bill, nil
}

// CreateBill validates the request field by field (first failure wins) and
// persists a new PENDING bill with zero paid amount. The bill number is
// derived inside the repository so the count and insert stay atomic.
func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	if req.KhataID == nil {
		return nil, apperrors.NewValidationError("Khata ID is required")
	}
	if req.BillType == "" {
		return nil, apperrors.NewValidationError("Bill type is required")
	}
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("Valid amount is required")
	}
	if req.BillDate == "" {
		return nil, apperrors.NewValidationError("Bill date is required")
	}

	billType := domain.BillType(strings.ToUpper(req.BillType))
	if !billType.IsValid() {
		return nil, apperrors.NewValidationError("Bill type must be PURCHASE or SALE")
	}

	billDate, err := dto.ParseDate(req.BillDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Valid bill date is required")
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := dto.ParseDate(req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("Valid due date is required")
		}
		dueDate = &parsed
	}

	var description *string
	if req.Description != nil {
		if trimmed := strings.TrimSpace(*req.Description); trimmed != "" {
			description = &trimmed
		}
	}

	now := time.Now().UTC()
	bill := domain.Bill{
		KhataID:     *req.KhataID,
		PartyID:     req.PartyID,
		BillDate:    billDate,
		DueDate:     dueDate,
		Amount:      *req.Amount,
		PaidAmount:  decimal.Zero,
		Description: description,
		BillType:    billType,
		Status:      domain.BillStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.billRepo.CreateBill(ctx, bill)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill in service: %w", err)
	}
	return created, nil
}

// RecordPayment validates the amount and delegates to the repository, which
// re-checks the outstanding balance under lock.
func (s *billService) RecordPayment(ctx context.Context, billID int64, req dto.RecordPaymentRequest) (*domain.Bill, error) {
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("Valid payment amount is required")
	}

	var notes *string
	if req.Notes != nil {
		if trimmed := strings.TrimSpace(*req.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	bill, err := s.billRepo.RecordPayment(ctx, billID, *req.Amount, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment in service: %w", err)
	}
	return bill, nil
}
