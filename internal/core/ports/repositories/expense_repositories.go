package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense of a trip together with its splits.
	FindExpenseByID(ctx context.Context, tripID, expenseID string) (*domain.Expense, error)

	// ListExpensesByTrip retrieves every expense of a trip with splits, newest first
	// (expense date, then creation time).
	ListExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error)

	// ListExpensesByTripPage retrieves a page of expenses using token-based pagination.
	// It returns the expenses, a token for the next page, and an error.
	ListExpensesByTripPage(ctx context.Context, tripID string, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists an expense and its splits atomically.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates an expense and replaces its splits atomically.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, tripID, expenseID string) error

	// SetSplitPaid sets the paid flag of one share and stamps the expense as updated.
	SetSplitPaid(ctx context.Context, expenseID, userID string, paid bool, updatedBy string, updatedAt time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
