package fixture

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// SaveUser stores a new user keyed by username.
func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return apperrors.ErrDuplicate
	}
	s.users[user.Username] = user
	return nil
}

// FindUserByUsername returns a user by username.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}
