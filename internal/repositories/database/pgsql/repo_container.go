package pgsql

import (
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	tripRepo := newPgxTripRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	activityRepo := newPgxActivityRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TripRepo:     tripRepo,
		ExpenseRepo:  expenseRepo,
		ActivityRepo: activityRepo,
	}
}
