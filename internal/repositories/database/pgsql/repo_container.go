package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		LeadRepo:     newPgxLeadRepository(dbPool),
		ProjectRepo:  newPgxProjectRepository(dbPool),
		TaskRepo:     newPgxTaskRepository(dbPool),
		DocumentRepo: newPgxDocumentRepository(dbPool),
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
	}
}
