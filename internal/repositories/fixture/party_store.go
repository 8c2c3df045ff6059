package fixture

import (
	"context"
	"sort"
	"time"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// ListParties returns all parties ordered by name ascending.
func (s *Store) ListParties(ctx context.Context) ([]domain.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parties := make([]domain.Party, len(s.parties))
	copy(parties, s.parties)
	sort.Slice(parties, func(i, j int) bool { return parties[i].Name < parties[j].Name })
	return parties, nil
}

// FindPartyByID returns a party by ID.
func (s *Store) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.parties {
		if s.parties[i].PartyID == partyID {
			party := s.parties[i]
			return &party, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SaveParty appends a new party with the next sequential ID.
func (s *Store) SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	party.PartyID = s.nextPartyID
	s.nextPartyID++
	party.CreatedAt = now
	party.UpdatedAt = now

	s.parties = append(s.parties, party)
	return &party, nil
}
