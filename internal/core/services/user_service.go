package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
	"github.com/ktfabrics/khata_ledger_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a bcrypt-hashed password.
// ErrDuplicate surfaces when the username is taken.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user for credential checks.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user in service: %w", err)
	}
	return user, nil
}
