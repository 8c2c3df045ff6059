package repositories

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
)

// KhataReader defines read operations for account books.
type KhataReader interface {
	// ListKhatas retrieves all khatas ordered by name ascending.
	ListKhatas(ctx context.Context) ([]domain.Khata, error)

	// FindKhataByID retrieves a single khata.
	FindKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error)
}

// KhataWriter defines write operations for account books.
type KhataWriter interface {
	// SaveKhata persists a new khata and returns it with its generated ID
	// and timestamps.
	SaveKhata(ctx context.Context, khata domain.Khata) (*domain.Khata, error)
}

// KhataRepositoryFacade combines all khata repository interfaces.
type KhataRepositoryFacade interface {
	KhataReader
	KhataWriter
}

// KhataRepositoryWithTx extends the facade with transaction capabilities.
type KhataRepositoryWithTx interface {
	KhataRepositoryFacade
	TransactionManager
}
