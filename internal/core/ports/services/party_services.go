package services

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
)

// PartySvcFacade bundles the party operations.
type PartySvcFacade interface {
	// ListParties retrieves all parties ordered by name ascending.
	ListParties(ctx context.Context) ([]domain.Party, error)

	// CreateParty persists a new party.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)
}
