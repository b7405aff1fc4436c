package pgsql

import (
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the concrete pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:       newPgxAccountRepository(dbPool),
		AccountDetailRepo: newPgxAccountDetailRepository(dbPool),
		AccountTypeRepo:   newPgxAccountTypeRepository(dbPool),
	}
}
