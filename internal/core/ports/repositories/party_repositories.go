package repositories

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// PartyReader defines read operations for parties.
type PartyReader interface {
	// ListParties retrieves all parties ordered by name ascending.
	ListParties(ctx context.Context) ([]domain.Party, error)

	// FindPartyByID retrieves a single party.
	FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)
}

// PartyWriter defines write operations for parties.
type PartyWriter interface {
	// SaveParty persists a new party and returns it with its generated ID.
	SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error)
}

// PartyRepositoryFacade combines all party repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
