package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
)

type khataService struct {
	khataRepo portsrepo.KhataRepositoryFacade
}

// NewKhataService creates the account book service.
func NewKhataService(khataRepo portsrepo.KhataRepositoryFacade) portssvc.KhataSvcFacade {
	return &khataService{khataRepo: khataRepo}
}

var _ portssvc.KhataSvcFacade = (*khataService)(nil)

// CreateKhata persists a new khata. The name is trimmed and required; a
// blank description is stored as null.
func (s *khataService) CreateKhata(ctx context.Context, req dto.CreateKhataRequest) (*domain.Khata, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Khata name is required")
	}

	var description *string
	if req.Description != nil {
		if trimmed := strings.TrimSpace(*req.Description); trimmed != "" {
			description = &trimmed
		}
	}

	now := time.Now().UTC()
	khata := domain.Khata{
		Name:        name,
		Description: description,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.khataRepo.SaveKhata(ctx, khata)
	if err != nil {
		return nil, fmt.Errorf("failed to create khata in service: %w", err)
	}
	return created, nil
}

// ListKhatas retrieves all khatas ordered by name. An empty store yields the
// synthetic default khata so the caller never sees an empty list; a store
// failure propagates and is soft-degraded by the handler.
func (s *khataService) ListKhatas(ctx context.Context) ([]domain.Khata, error) {
	khatas, err := s.khataRepo.ListKhatas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list khatas in service: %w", err)
	}
	if len(khatas) == 0 {
		return []domain.Khata{domain.DefaultKhata()}, nil
	}
	return khatas, nil
}
