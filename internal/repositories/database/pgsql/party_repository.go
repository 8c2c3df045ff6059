package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
	"github.com/ktfabrics/khata_ledger_app/internal/models"
	"github.com/ktfabrics/khata_ledger_app/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

// SaveParty inserts a new party and returns it with its generated ID.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error) {
	query := `
		INSERT INTO parties (name, party_type, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING party_id;
	`
	var partyID int64
	err := r.Pool.QueryRow(ctx, query,
		party.Name,
		string(party.Type),
		party.Phone,
		party.CreatedAt,
		party.UpdatedAt,
	).Scan(&partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to save party %q: %w", party.Name, err)
	}

	party.PartyID = partyID
	return &party, nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	query := `
		SELECT party_id, name, party_type, phone, created_at, updated_at
		FROM parties
		WHERE party_id = $1;
	`
	var modelParty models.Party
	err := r.Pool.QueryRow(ctx, query, partyID).Scan(
		&modelParty.PartyID,
		&modelParty.Name,
		&modelParty.Type,
		&modelParty.Phone,
		&modelParty.CreatedAt,
		&modelParty.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party %d: %w", partyID, err)
	}

	domainParty := mapping.ToDomainParty(modelParty)
	return &domainParty, nil
}

// ListParties retrieves all parties ordered by name ascending.
func (r *PgxPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	query := `
		SELECT party_id, name, party_type, phone, created_at, updated_at
		FROM parties
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	modelParties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Party, error) {
		var party models.Party
		err := row.Scan(
			&party.PartyID,
			&party.Name,
			&party.Type,
			&party.Phone,
			&party.CreatedAt,
			&party.UpdatedAt,
		)
		return party, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}

	return mapping.ToDomainPartySlice(modelParties), nil
}
