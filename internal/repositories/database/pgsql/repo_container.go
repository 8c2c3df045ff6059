package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		KhataRepo: newPgxKhataRepository(dbPool),
		BillRepo:  newPgxBillRepository(dbPool),
		PartyRepo: newPgxPartyRepository(dbPool),
		UserRepo:  newPgxUserRepository(dbPool),
	}
}
