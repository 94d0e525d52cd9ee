package pgsql

import (
	portsrepo "github.com/gwssd/medical_bills_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		BillRepo:     newPgxBillRepository(dbPool),
	}
}
