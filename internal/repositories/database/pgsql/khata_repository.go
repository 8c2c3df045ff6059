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

type PgxKhataRepository struct {
	BaseRepository
}

// newPgxKhataRepository creates a new repository for account book data.
func newPgxKhataRepository(pool *pgxpool.Pool) portsrepo.KhataRepositoryWithTx {
	return &PgxKhataRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.KhataRepositoryWithTx = (*PgxKhataRepository)(nil)

// SaveKhata inserts a new khata and returns it with its generated ID.
func (r *PgxKhataRepository) SaveKhata(ctx context.Context, khata domain.Khata) (*domain.Khata, error) {
	modelKhata := mapping.ToModelKhata(khata)

	query := `
		INSERT INTO khatas (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING khata_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelKhata.Name,
		modelKhata.Description,
		modelKhata.CreatedAt,
		modelKhata.UpdatedAt,
	).Scan(&modelKhata.KhataID)
	if err != nil {
		return nil, fmt.Errorf("failed to save khata %q: %w", modelKhata.Name, err)
	}

	domainKhata := mapping.ToDomainKhata(modelKhata)
	return &domainKhata, nil
}

// FindKhataByID retrieves a khata by its ID.
func (r *PgxKhataRepository) FindKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error) {
	query := `
		SELECT khata_id, name, description, created_at, updated_at
		FROM khatas
		WHERE khata_id = $1;
	`
	var modelKhata models.Khata
	err := r.Pool.QueryRow(ctx, query, khataID).Scan(
		&modelKhata.KhataID,
		&modelKhata.Name,
		&modelKhata.Description,
		&modelKhata.CreatedAt,
		&modelKhata.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find khata %d: %w", khataID, err)
	}

	domainKhata := mapping.ToDomainKhata(modelKhata)
	return &domainKhata, nil
}

// ListKhatas retrieves all khatas ordered by name ascending.
func (r *PgxKhataRepository) ListKhatas(ctx context.Context) ([]domain.Khata, error) {
	query := `
		SELECT khata_id, name, description, created_at, updated_at
		FROM khatas
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query khatas: %w", err)
	}
	defer rows.Close()

	modelKhatas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Khata, error) {
		var khata models.Khata
		err := row.Scan(
			&khata.KhataID,
			&khata.Name,
			&khata.Description,
			&khata.CreatedAt,
			&khata.UpdatedAt,
		)
		return khata, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan khatas: %w", err)
	}

	return mapping.ToDomainKhataSlice(modelKhatas), nil
}
