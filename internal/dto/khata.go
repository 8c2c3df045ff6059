package dto

import (
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// CreateKhataRequest defines the data needed to create an account book.
// Name presence is validated in the service after trimming, so a
// whitespace-only name is rejected with the same message as a missing one.
type CreateKhataRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// KhataResponse defines the data returned for a khata.
type KhataResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ListKhatasResponse wraps the khata list. Error is set only on the
// soft-degrade path, where the store failure is masked with the default
// khata instead of surfacing as a 5xx.
type ListKhatasResponse struct {
	Khatas []KhataResponse `json:"khatas"`
	Error  string          `json:"error,omitempty"`
}

// CreateKhataResponse wraps a newly created khata.
type CreateKhataResponse struct {
	Khata KhataResponse `json:"khata"`
}

// ToKhataResponse converts a domain.Khata to its DTO.
func ToKhataResponse(k *domain.Khata) KhataResponse {
	return KhataResponse{
		ID:          k.KhataID,
		Name:        k.Name,
		Description: k.Description,
		CreatedAt:   FormatTime(k.CreatedAt),
		UpdatedAt:   FormatTime(k.UpdatedAt),
	}
}

// ToKhataResponses converts a slice of domain khatas to DTOs.
func ToKhataResponses(khatas []domain.Khata) []KhataResponse {
	res := make([]KhataResponse, len(khatas))
	for i := range khatas {
		res[i] = ToKhataResponse(&khatas[i])
	}
	return res
}
