package services

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
)

// UserSvcFacade bundles the user operations the auth surface needs.
type UserSvcFacade interface {
	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByUsername retrieves a user for credential checks.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
