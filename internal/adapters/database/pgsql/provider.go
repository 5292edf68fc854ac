package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/EstateDesk/estate_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
// The listing cache is attached separately by the caller.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(db),
		PropertyRepo:    NewPropertyRepository(db),
		ApplicationRepo: NewApplicationRepository(db),
		ContractRepo:    NewContractRepository(db),
	}
}
