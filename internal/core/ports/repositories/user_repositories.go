package repositories

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// UserReader defines read operations for users.
type UserReader interface {
	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	// SaveUser persists a new user. Returns ErrDuplicate when the username
	// is already taken.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
