package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
	"github.com/ktfabrics/khata_ledger_app/internal/middleware"
	"github.com/ktfabrics/khata_ledger_app/internal/utils/pagination"
)

// BillHandler handles HTTP requests for bills and their payments.
type BillHandler struct {
	billService portssvc.BillSvcFacade
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bs portssvc.BillSvcFacade) *BillHandler {
	return &BillHandler{billService: bs}
}

// RegisterBillRoutes registers bill routes on the given group.
func (h *BillHandler) RegisterBillRoutes(rg *gin.RouterGroup) {
	bills := rg.Group("/bill")
	{
		bills.GET("", h.listBills)
		bills.POST("", h.createBill)
		bills.GET("/:billID", h.getBill)
		bills.POST("/:billID/payments", h.recordPayment)
	}
}

// listBills godoc
// @Summary List bills
// @Description Retrieves a page of bills, newest bill date first, with optional khata, party, type, status and date-range filters. Date bounds are inclusive.
// @Tags bills
// @Produce json
// @Param khataId query int false "Filter by khata ID"
// @Param partyId query int false "Filter by party ID"
// @Param billType query string false "Filter by bill type" Enums(PURCHASE, SALE)
// @Param status query string false "Filter by status" Enums(PENDING, PARTIAL, PAID, CANCELLED)
// @Param startDate query string false "Earliest bill date (inclusive, ISO-8601 or YYYY-MM-DD)"
// @Param endDate query string false "Latest bill date (inclusive, ISO-8601 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/ledger/bill [get]
func (h *BillHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter, err := buildBillFilter(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
		return
	}

	bills, total, err := h.billService.ListBills(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to fetch bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills", "details": err.Error()})
		return
	}

	page := pagination.Normalize(params.Page, params.PageSize)
	c.JSON(http.StatusOK, dto.ListBillsResponse{
		Bills: dto.ToBillResponses(bills),
		Pagination: dto.PaginationResponse{
			Total:      total,
			Page:       page.Number,
			PageSize:   page.Size,
			TotalPages: page.TotalPages(total),
		},
	})
}

// buildBillFilter converts the bound query params into a domain filter,
// validating enum values and date formats.
func buildBillFilter(params dto.ListBillsParams) (domain.BillFilter, error) {
	filter := domain.BillFilter{
		KhataID: params.KhataID,
		PartyID: params.PartyID,
	}

	if params.BillType != nil {
		billType := domain.BillType(strings.ToUpper(*params.BillType))
		if !billType.IsValid() {
			return filter, apperrors.NewValidationError("Bill type must be PURCHASE or SALE")
		}
		filter.BillType = &billType
	}
	if params.Status != nil {
		status := domain.BillStatus(strings.ToUpper(*params.Status))
		if !status.IsValid() {
			return filter, apperrors.NewValidationError("Invalid bill status filter")
		}
		filter.Status = &status
	}
	if params.StartDate != nil {
		start, err := dto.ParseDate(*params.StartDate)
		if err != nil {
			return filter, apperrors.NewValidationError("Invalid startDate")
		}
		filter.StartDate = &start
	}
	if params.EndDate != nil {
		end, err := dto.ParseDate(*params.EndDate)
		if err != nil {
			return filter, apperrors.NewValidationError("Invalid endDate")
		}
		filter.EndDate = &end
	}

	page := pagination.Normalize(params.Page, params.PageSize)
	filter.Offset = page.Offset()
	filter.Limit = page.Size

	return filter, nil
}

// createBill godoc
// @Summary Create a bill
// @Description Creates a new bill with a sequential number derived per khata. New bills start PENDING with zero paid amount.
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.CreateBillResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/ledger/bill [post]
func (h *BillHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for create bill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.Message(err)})
			return
		}
		logger.Error("Failed to create bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBillResponse{Bill: dto.ToBillResponse(bill)})
}

// getBill godoc
// @Summary Get a bill
// @Description Retrieves a single bill with its payment transactions.
// @Tags bills
// @Produce json
// @Param billID path int true "Bill ID"
// @Success 200 {object} dto.CreateBillResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/ledger/bill/{billID} [get]
func (h *BillHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	billID, err := strconv.ParseInt(c.Param("billID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill ID"})
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to fetch bill", slog.Int64("bill_id", billID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bill", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CreateBillResponse{Bill: dto.ToBillResponse(bill)})
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment against a bill and advances its status to PARTIAL or PAID.
// @Tags bills
// @Accept json
// @Produce json
// @Param billID path int true "Bill ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.CreateBillResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/ledger/bill/{billID}/payments [post]
func (h *BillHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	billID, err := strconv.ParseInt(c.Param("billID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill ID"})
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for record payment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	bill, err := h.billService.RecordPayment(c.Request.Context(), billID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to record payment", slog.Int64("bill_id", billID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBillResponse{Bill: dto.ToBillResponse(bill)})
}
