package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/core/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
)

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Bill), args.Get(1).(int64), args.Error(2)
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	args := m.Called(ctx, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) RecordPayment(ctx context.Context, billID int64, amount decimal.Decimal, notes *string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, amount, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

// --- Test Suite ---
type BillServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBillRepository
	service  portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBillRepository)
	suite.service = services.NewBillService(suite.mockRepo)
}

func int64Ptr(v int64) *int64 { return &v }

func validCreateBillRequest() dto.CreateBillRequest {
	return dto.CreateBillRequest{
		KhataID:  int64Ptr(1),
		BillType: "PURCHASE",
		Amount:   dto.NewDecimal(decimal.NewFromInt(25000)),
		BillDate: "2024-01-15",
	}
}

// --- Test Cases ---

func (suite *BillServiceTestSuite) TestCreateBill_Success() {
	ctx := context.Background()
	req := validCreateBillRequest()

	suite.mockRepo.On("CreateBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		return b.KhataID == 1 &&
			b.BillType == domain.BillTypePurchase &&
			b.Status == domain.BillStatusPending &&
			b.Amount.Equal(decimal.NewFromInt(25000)) &&
			b.PaidAmount.IsZero()
	})).Return(&domain.Bill{
		BillID:     1,
		BillNumber: "BILL-1-0001",
		KhataID:    1,
		Amount:     decimal.NewFromInt(25000),
		PaidAmount: decimal.Zero,
		BillType:   domain.BillTypePurchase,
		Status:     domain.BillStatusPending,
	}, nil).Once()

	bill, err := suite.service.CreateBill(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(bill)
	suite.Equal("BILL-1-0001", bill.BillNumber)
	suite.Equal(domain.BillStatusPending, bill.Status)
	suite.True(bill.PaidAmount.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_LowercaseTypeIsNormalized() {
	ctx := context.Background()
	req := validCreateBillRequest()
	req.BillType = "sale"

	suite.mockRepo.On("CreateBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		return b.BillType == domain.BillTypeSale
	})).Return(&domain.Bill{BillID: 1, BillType: domain.BillTypeSale}, nil).Once()

	_, err := suite.service.CreateBill(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_MissingKhataID() {
	req := validCreateBillRequest()
	req.KhataID = nil

	_, err := suite.service.CreateBill(context.Background(), req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Equal("Khata ID is required", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_MissingBillType() {
	req := validCreateBillRequest()
	req.BillType = ""

	_, err := suite.service.CreateBill(context.Background(), req)

	suite.Require().Error(err)
	suite.Equal("Bill type is required", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_InvalidBillType() {
	req := validCreateBillRequest()
	req.BillType = "TRANSFER"

	_, err := suite.service.CreateBill(context.Background(), req)

	suite.Require().Error(err)
	suite.Equal("Bill type must be PURCHASE or SALE", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_NonPositiveAmount() {
	req := validCreateBillRequest()
	req.Amount = dto.NewDecimal(decimal.Zero)

	_, err := suite.service.CreateBill(context.Background(), req)

	suite.Require().Error(err)
	suite.Equal("Valid amount is required", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_MissingBillDate() {
	req := validCreateBillRequest()
	req.BillDate = ""

	_, err := suite.service.CreateBill(context.Background(), req)

	suite.Require().Error(err)
	suite.Equal("Bill date is required", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

// Validation is fail-fast: with several fields missing, the khata check
// reports first.
func (suite *BillServiceTestSuite) TestCreateBill_FirstFailureWins() {
	req := dto.CreateBillRequest{}

	_, err := suite.service.CreateBill(context.Background(), req)

	suite.Require().Error(err)
	suite.Equal("Khata ID is required", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_UnparseableBillDate() {
	req := validCreateBillRequest()
	req.BillDate = "15/01/2024"

	_, err := suite.service.CreateBill(context.Background(), req)

	suite.Require().Error(err)
	suite.Equal("Valid bill date is required", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_KhataNotFound() {
	ctx := context.Background()
	req := validCreateBillRequest()

	suite.mockRepo.On("CreateBill", ctx, mock.AnythingOfType("domain.Bill")).
		Return(nil, apperrors.NewAppError(404, "Khata not found", apperrors.ErrNotFound)).Once()

	_, err := suite.service.CreateBill(ctx, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Equal("Khata not found", apperrors.Message(err))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestListBills_PassesFilterThrough() {
	ctx := context.Background()
	khataID := int64(1)
	filter := domain.BillFilter{KhataID: &khataID, Offset: 0, Limit: 10}

	expected := []domain.Bill{{BillID: 2, BillNumber: "BILL-1-0002"}, {BillID: 1, BillNumber: "BILL-1-0001"}}
	suite.mockRepo.On("ListBills", ctx, filter).Return(expected, int64(2), nil).Once()

	bills, total, err := suite.service.ListBills(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(bills, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(10000)
	req := dto.RecordPaymentRequest{Amount: dto.NewDecimal(amount)}

	suite.mockRepo.On("RecordPayment", ctx, int64(1), amount, (*string)(nil)).
		Return(&domain.Bill{
			BillID:     1,
			Amount:     decimal.NewFromInt(25000),
			PaidAmount: amount,
			Status:     domain.BillStatusPartial,
		}, nil).Once()

	bill, err := suite.service.RecordPayment(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(domain.BillStatusPartial, bill.Status)
	suite.True(bill.Outstanding().Equal(decimal.NewFromInt(15000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestRecordPayment_InvalidAmount() {
	req := dto.RecordPaymentRequest{Amount: dto.NewDecimal(decimal.NewFromInt(-5))}

	_, err := suite.service.RecordPayment(context.Background(), 1, req)

	suite.Require().Error(err)
	suite.Equal("Valid payment amount is required", apperrors.Message(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "RecordPayment")
}

func (suite *BillServiceTestSuite) TestGetBillByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindBillByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBillByID(ctx, 99)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}

// Outstanding derives from amount and paid amount.
func TestBillOutstanding(t *testing.T) {
	bill := domain.Bill{
		Amount:     decimal.NewFromInt(35000),
		PaidAmount: decimal.NewFromInt(10000),
		BillDate:   time.Now(),
	}
	if !bill.Outstanding().Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("expected outstanding 25000, got %s", bill.Outstanding())
	}
}
