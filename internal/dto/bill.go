package dto

import (
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListBillsParams binds the bill list query parameters. All filters are
// optional; page and pageSize get their defaults here and are clamped later.
type ListBillsParams struct {
	KhataID   *int64  `form:"khataId"`
	PartyID   *int64  `form:"partyId"`
	BillType  *string `form:"billType"`
	Status    *string `form:"status"`
	StartDate *string `form:"startDate"`
	EndDate   *string `form:"endDate"`
	Page      int     `form:"page,default=1"`
	PageSize  int     `form:"pageSize,default=10"`
}

// CreateBillRequest defines the data needed to create a bill. Required
// fields are pointers/strings checked fail-fast in the service so each
// missing field yields its own message. Amount accepts a JSON number or a
// decimal string.
type CreateBillRequest struct {
	KhataID     *int64           `json:"khataId"`
	PartyID     *int64           `json:"partyId"`
	BillType    string           `json:"billType"`
	Amount      *decimal.Decimal `json:"amount"`
	BillDate    string           `json:"billDate"`
	DueDate     string           `json:"dueDate"`
	Description *string          `json:"description"`
}

// RecordPaymentRequest defines the data needed to record a payment
// against a bill.
type RecordPaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Notes  *string          `json:"notes"`
}

// BillTransactionResponse is the lightweight payment summary embedded in
// bill responses.
type BillTransactionResponse struct {
	ID     int64  `json:"id"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

// BillResponse defines the data returned for a bill. Monetary fields are
// decimal strings, never floats; dates are ISO-8601 strings.
type BillResponse struct {
	ID           int64                     `json:"id"`
	BillNumber   string                    `json:"billNumber"`
	KhataID      int64                     `json:"khataId"`
	PartyID      *int64                    `json:"partyId"`
	PartyName    *string                   `json:"partyName"`
	BillDate     string                    `json:"billDate"`
	DueDate      *string                   `json:"dueDate"`
	Amount       string                    `json:"amount"`
	PaidAmount   string                    `json:"paidAmount"`
	Description  *string                   `json:"description"`
	BillType     string                    `json:"billType"`
	Status       string                    `json:"status"`
	Transactions []BillTransactionResponse `json:"transactions"`
	CreatedAt    string                    `json:"createdAt"`
	UpdatedAt    string                    `json:"updatedAt"`
}

// PaginationResponse carries the page metadata for list responses.
type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int64 `json:"totalPages"`
}

// ListBillsResponse wraps a page of bills.
type ListBillsResponse struct {
	Bills      []BillResponse     `json:"bills"`
	Pagination PaginationResponse `json:"pagination"`
}

// CreateBillResponse wraps a newly created bill.
type CreateBillResponse struct {
	Bill BillResponse `json:"bill"`
}

// ToBillResponse converts a domain.Bill to its DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	txns := make([]BillTransactionResponse, len(b.Transactions))
	for i, t := range b.Transactions {
		txns[i] = BillTransactionResponse{
			ID:     t.TransactionID,
			Amount: t.Amount.String(),
			Date:   FormatTime(t.CreatedAt),
		}
	}
	return BillResponse{
		ID:           b.BillID,
		BillNumber:   b.BillNumber,
		KhataID:      b.KhataID,
		PartyID:      b.PartyID,
		PartyName:    b.PartyName,
		BillDate:     FormatTime(b.BillDate),
		DueDate:      FormatTimePtr(b.DueDate),
		Amount:       b.Amount.String(),
		PaidAmount:   b.PaidAmount.String(),
		Description:  b.Description,
		BillType:     string(b.BillType),
		Status:       string(b.Status),
		Transactions: txns,
		CreatedAt:    FormatTime(b.CreatedAt),
		UpdatedAt:    FormatTime(b.UpdatedAt),
	}
}

// ToBillResponses converts a slice of domain bills to DTOs.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i := range bills {
		res[i] = ToBillResponse(&bills[i])
	}
	return res
}

// NewDecimal is a small helper for tests and fixtures building request amounts.
func NewDecimal(d decimal.Decimal) *decimal.Decimal {
	return &d
}
