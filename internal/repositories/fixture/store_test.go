package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/utils"
)

func TestSeedDataset(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	khatas, err := s.ListKhatas(ctx)
	require.NoError(t, err)
	require.Len(t, khatas, 1)
	assert.Equal(t, int64(1), khatas[0].KhataID)
	assert.Equal(t, "Main Account Book", khatas[0].Name)

	parties, err := s.ListParties(ctx)
	require.NoError(t, err)
	require.Len(t, parties, 2)

	bills, total, err := s.ListBills(ctx, domain.BillFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, bills, 2)

	// Newest bill date first: the sale precedes the purchase.
	assert.Equal(t, "BILL-1-0002", bills[0].BillNumber)
	assert.Equal(t, domain.BillStatusPartial, bills[0].Status)
	require.Len(t, bills[0].Transactions, 1)
	assert.True(t, bills[0].Transactions[0].Amount.Equal(decimal.NewFromInt(10000)))

	assert.Equal(t, "BILL-1-0001", bills[1].BillNumber)
	assert.Equal(t, domain.BillStatusPending, bills[1].Status)
	assert.True(t, bills[1].PaidAmount.IsZero())
}

func TestSeedDemoUserLogin(t *testing.T) {
	s := NewStore()

	user, err := s.FindUserByUsername(context.Background(), DemoUsername)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash(DemoPassword, user.PasswordHash))
}

func TestCreateBillNumbersSequentially(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	bill := domain.Bill{
		KhataID:    1,
		BillDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(5000),
		PaidAmount: decimal.Zero,
		BillType:   domain.BillTypeSale,
		Status:     domain.BillStatusPending,
	}

	created, err := s.CreateBill(ctx, bill)
	require.NoError(t, err)
	assert.Equal(t, "BILL-1-0003", created.BillNumber)

	next, err := s.CreateBill(ctx, bill)
	require.NoError(t, err)
	assert.Equal(t, "BILL-1-0004", next.BillNumber)
}

func TestCreateBillUnknownKhata(t *testing.T) {
	s := NewStore()

	_, err := s.CreateBill(context.Background(), domain.Bill{
		KhataID:  99,
		Amount:   decimal.NewFromInt(100),
		BillType: domain.BillTypeSale,
		Status:   domain.BillStatusPending,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Khata not found", apperrors.Message(err))
}

func TestListBillsDateRangeInclusive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	// The purchase sits exactly on the seed date; an inclusive range with
	// both bounds on that instant must still match it.
	seed := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	filter := domain.BillFilter{StartDate: &seed, EndDate: &seed, Limit: 10}

	bills, total, err := s.ListBills(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bills, 1)
	assert.Equal(t, "BILL-1-0001", bills[0].BillNumber)
}

func TestListBillsPaging(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	bills, total, err := s.ListBills(ctx, domain.BillFilter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, bills, 1)
	assert.Equal(t, "BILL-1-0001", bills[0].BillNumber)

	// Past the end yields an empty page, not an error.
	bills, total, err = s.ListBills(ctx, domain.BillFilter{Offset: 10, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, bills)
}

func TestRecordPaymentAdvancesStatus(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	// Pay off the remaining 25000 on the partially paid sale.
	bill, err := s.RecordPayment(ctx, 2, decimal.NewFromInt(25000), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BillStatusPaid, bill.Status)
	assert.True(t, bill.PaidAmount.Equal(decimal.NewFromInt(35000)))
	assert.Len(t, bill.Transactions, 2)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	s := NewStore()

	_, err := s.RecordPayment(context.Background(), 1, decimal.NewFromInt(999999), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Payment amount exceeds outstanding balance", apperrors.Message(err))
}
