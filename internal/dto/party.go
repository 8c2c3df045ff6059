package dto

import (
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a party.
type CreatePartyRequest struct {
	Name  string  `json:"name" binding:"required"`
	Type  string  `json:"type" binding:"required,oneof=CUSTOMER VENDOR"`
	Phone *string `json:"phone"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ListPartiesResponse wraps the party list.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// CreatePartyResponse wraps a newly created party.
type CreatePartyResponse struct {
	Party PartyResponse `json:"party"`
}

// ToPartyResponse converts a domain.Party to its DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		ID:        p.PartyID,
		Name:      p.Name,
		Type:      string(p.Type),
		Phone:     p.Phone,
		CreatedAt: FormatTime(p.CreatedAt),
		UpdatedAt: FormatTime(p.UpdatedAt),
	}
}

// ToPartyResponses converts a slice of domain parties to DTOs.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}
