package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
	"github.com/ktfabrics/khata_ledger_app/internal/handlers"
	"github.com/ktfabrics/khata_ledger_app/internal/middleware"
)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Bill), args.Get(1).(int64), args.Error(2)
}

func (m *MockBillService) GetBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) RecordPayment(ctx context.Context, billID int64, req dto.RecordPaymentRequest) (*domain.Bill, error) {
	args := m.Called(ctx, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

var _ portssvc.BillSvcFacade = (*MockBillService)(nil)

// --- Test Suite ---
type BillHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBillService
}

func (suite *BillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockBillService)

	ledger := suite.router.Group("/api/ledger", middleware.AuthMiddleware(testJWTSecret))
	handlers.NewBillHandler(suite.mockService).RegisterBillRoutes(ledger)
}

func (suite *BillHandlerTestSuite) doRequest(method, path, body string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), "test-user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleBill() *domain.Bill {
	billDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return &domain.Bill{
		BillID:     1,
		BillNumber: "BILL-1-0001",
		KhataID:    1,
		BillDate:   billDate,
		Amount:     decimal.NewFromInt(25000),
		PaidAmount: decimal.Zero,
		BillType:   domain.BillTypePurchase,
		Status:     domain.BillStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt: billDate,
			UpdatedAt: billDate,
		},
	}
}

// --- Test Cases ---

func (suite *BillHandlerTestSuite) TestListBills_DefaultsAndShape() {
	suite.mockService.On("ListBills", mock.Anything, mock.MatchedBy(func(f domain.BillFilter) bool {
		return f.Offset == 0 && f.Limit == 10 &&
			f.KhataID == nil && f.BillType == nil && f.StartDate == nil
	})).Return([]domain.Bill{*sampleBill()}, int64(1), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/ledger/bill", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBillsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Bills, 1)
	suite.Equal("BILL-1-0001", resp.Bills[0].BillNumber)
	suite.Equal("25000", resp.Bills[0].Amount)
	suite.Equal("0", resp.Bills[0].PaidAmount)
	suite.Equal("PENDING", resp.Bills[0].Status)
	suite.Equal(int64(1), resp.Pagination.Total)
	suite.Equal(1, resp.Pagination.Page)
	suite.Equal(10, resp.Pagination.PageSize)
	suite.Equal(int64(1), resp.Pagination.TotalPages)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestListBills_FiltersForwarded() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockService.On("ListBills", mock.Anything, mock.MatchedBy(func(f domain.BillFilter) bool {
		return f.KhataID != nil && *f.KhataID == 1 &&
			f.BillType != nil && *f.BillType == domain.BillTypeSale &&
			f.Status != nil && *f.Status == domain.BillStatusPartial &&
			f.StartDate != nil && f.StartDate.Equal(start) &&
			f.EndDate != nil && f.EndDate.Equal(end) &&
			f.Offset == 10 && f.Limit == 10
	})).Return([]domain.Bill{}, int64(0), nil).Once()

	w := suite.doRequest(http.MethodGet,
		"/api/ledger/bill?khataId=1&billType=SALE&status=PARTIAL&startDate=2024-01-01&endDate=2024-01-31&page=2", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBillsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(0), resp.Pagination.Total)
	suite.Equal(int64(0), resp.Pagination.TotalPages)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestListBills_InvalidBillType() {
	w := suite.doRequest(http.MethodGet, "/api/ledger/bill?billType=TRANSFER", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Bill type must be PURCHASE or SALE", resp["error"])
	suite.mockService.AssertNotCalled(suite.T(), "ListBills")
}

func (suite *BillHandlerTestSuite) TestListBills_InvalidStartDate() {
	w := suite.doRequest(http.MethodGet, "/api/ledger/bill?startDate=not-a-date", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListBills")
}

func (suite *BillHandlerTestSuite) TestListBills_StoreFailure() {
	suite.mockService.On("ListBills", mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.New("connection refused")).Once()

	w := suite.doRequest(http.MethodGet, "/api/ledger/bill", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Failed to fetch bills", resp["error"])
	suite.NotEmpty(resp["details"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestCreateBill_Success() {
	suite.mockService.On("CreateBill", mock.Anything, mock.MatchedBy(func(req dto.CreateBillRequest) bool {
		return req.KhataID != nil && *req.KhataID == 1 && req.BillType == "PURCHASE"
	})).Return(sampleBill(), nil).Once()

	body := `{"khataId":1,"billType":"PURCHASE","amount":25000,"billDate":"2024-01-15"}`
	w := suite.doRequest(http.MethodPost, "/api/ledger/bill", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateBillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("BILL-1-0001", resp.Bill.BillNumber)
	suite.Equal("PENDING", resp.Bill.Status)
	suite.Equal("0", resp.Bill.PaidAmount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestCreateBill_ValidationError() {
	suite.mockService.On("CreateBill", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("Khata ID is required")).Once()

	w := suite.doRequest(http.MethodPost, "/api/ledger/bill", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Khata ID is required", resp["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestCreateBill_KhataNotFound() {
	suite.mockService.On("CreateBill", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(404, "Khata not found", apperrors.ErrNotFound)).Once()

	body := `{"khataId":99,"billType":"PURCHASE","amount":25000,"billDate":"2024-01-15"}`
	w := suite.doRequest(http.MethodPost, "/api/ledger/bill", body)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Khata not found", resp["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestGetBill_NotFound() {
	suite.mockService.On("GetBillByID", mock.Anything, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/ledger/bill/42", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestGetBill_InvalidID() {
	w := suite.doRequest(http.MethodGet, "/api/ledger/bill/abc", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetBillByID")
}

func (suite *BillHandlerTestSuite) TestRecordPayment_Success() {
	paid := sampleBill()
	paid.PaidAmount = decimal.NewFromInt(10000)
	paid.Status = domain.BillStatusPartial

	suite.mockService.On("RecordPayment", mock.Anything, int64(1), mock.MatchedBy(func(req dto.RecordPaymentRequest) bool {
		return req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(10000))
	})).Return(paid, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/ledger/bill/1/payments", `{"amount":10000}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateBillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("PARTIAL", resp.Bill.Status)
	suite.Equal("10000", resp.Bill.PaidAmount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestRecordPayment_ExceedsOutstanding() {
	suite.mockService.On("RecordPayment", mock.Anything, int64(1), mock.Anything).
		Return(nil, apperrors.NewValidationError("Payment amount exceeds outstanding balance")).Once()

	w := suite.doRequest(http.MethodPost, "/api/ledger/bill/1/payments", `{"amount":999999}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Payment amount exceeds outstanding balance", resp["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func TestBillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillHandlerTestSuite))
}
