package services

import (
	"context"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
)

// KhataReaderSvc defines read operations for account books.
type KhataReaderSvc interface {
	// ListKhatas retrieves all khatas ordered by name. The result is never
	// empty: an empty store yields the synthetic default khata.
	ListKhatas(ctx context.Context) ([]domain.Khata, error)
}

// KhataWriterSvc defines write operations for account books.
type KhataWriterSvc interface {
	// CreateKhata persists a new khata with a trimmed, required name.
	CreateKhata(ctx context.Context, req dto.CreateKhataRequest) (*domain.Khata, error)
}

// KhataSvcFacade combines all khata service interfaces.
type KhataSvcFacade interface {
	KhataReaderSvc
	KhataWriterSvc
}
