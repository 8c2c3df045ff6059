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

type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates the party service.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

// ListParties retrieves all parties ordered by name.
func (s *partyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties in service: %w", err)
	}
	return parties, nil
}

// CreateParty persists a new party.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Party name is required")
	}

	now := time.Now().UTC()
	party := domain.Party{
		Name:  name,
		Type:  domain.PartyType(req.Type),
		Phone: req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.partyRepo.SaveParty(ctx, party)
	if err != nil {
		return nil, fmt.Errorf("failed to create party in service: %w", err)
	}
	return created, nil
}
