package fixture

import (
	"context"
	"time"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// matchesFilter applies the equality filters and the inclusive date range.
func matchesFilter(bill *domain.Bill, filter domain.BillFilter) bool {
	if filter.KhataID != nil && bill.KhataID != *filter.KhataID {
		return false
	}
	if filter.PartyID != nil && (bill.PartyID == nil || *bill.PartyID != *filter.PartyID) {
		return false
	}
	if filter.BillType != nil && bill.BillType != *filter.BillType {
		return false
	}
	if filter.Status != nil && bill.Status != *filter.Status {
		return false
	}
	if filter.StartDate != nil && bill.BillDate.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && bill.BillDate.After(*filter.EndDate) {
		return false
	}
	return true
}

// ListBills returns the requested page of matching bills, newest bill date
// first, plus the total match count.
func (s *Store) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Bill
	for i := range s.bills {
		if matchesFilter(&s.bills[i], filter) {
			matched = append(matched, s.bills[i])
		}
	}
	sortBillsNewestFirst(matched)

	total := int64(len(matched))
	start := filter.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	page := make([]domain.Bill, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

// FindBillByID returns a bill by ID.
func (s *Store) FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.findBillLocked(billID)
	if err != nil {
		return nil, err
	}
	copied := *bill
	return &copied, nil
}

func (s *Store) findBillLocked(billID int64) (*domain.Bill, error) {
	for i := range s.bills {
		if s.bills[i].BillID == billID {
			return &s.bills[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// CreateBill appends a new bill, numbering it from the count of prior bills
// for the khata. The store mutex makes the count+append atomic.
func (s *Store) CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	khataExists := false
	for i := range s.khatas {
		if s.khatas[i].KhataID == bill.KhataID {
			khataExists = true
			break
		}
	}
	if !khataExists {
		return nil, apperrors.NewAppError(404, "Khata not found", apperrors.ErrNotFound)
	}

	if bill.PartyID != nil {
		found := false
		for i := range s.parties {
			if s.parties[i].PartyID == *bill.PartyID {
				name := s.parties[i].Name
				bill.PartyName = &name
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.NewAppError(404, "Party not found", apperrors.ErrNotFound)
		}
	}

	var priorCount int64
	for i := range s.bills {
		if s.bills[i].KhataID == bill.KhataID {
			priorCount++
		}
	}

	now := time.Now().UTC()
	bill.BillID = s.nextBillID
	s.nextBillID++
	bill.BillNumber = domain.FormatBillNumber(bill.KhataID, priorCount+1)
	bill.CreatedAt = now
	bill.UpdatedAt = now
	bill.Transactions = nil

	s.bills = append(s.bills, bill)
	return &bill, nil
}

// RecordPayment appends a payment to a bill and advances paid amount and status.
func (s *Store) RecordPayment(ctx context.Context, billID int64, amount decimal.Decimal, notes *string) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.findBillLocked(billID)
	if err != nil {
		return nil, err
	}

	if bill.Status == domain.BillStatusCancelled {
		return nil, apperrors.NewValidationError("Cannot record a payment on a cancelled bill")
	}
	if amount.GreaterThan(bill.Outstanding()) {
		return nil, apperrors.NewValidationError("Payment amount exceeds outstanding balance")
	}

	now := time.Now().UTC()
	txn := domain.BillTransaction{
		TransactionID: s.nextTxnID,
		BillID:        billID,
		Amount:        amount,
		Notes:         notes,
		CreatedAt:     now,
	}
	s.nextTxnID++

	bill.Transactions = append(bill.Transactions, txn)
	bill.PaidAmount = bill.PaidAmount.Add(amount)
	if bill.PaidAmount.GreaterThanOrEqual(bill.Amount) {
		bill.Status = domain.BillStatusPaid
	} else {
		bill.Status = domain.BillStatusPartial
	}
	bill.UpdatedAt = now

	copied := *bill
	return &copied, nil
}
