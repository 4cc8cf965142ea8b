package services

import (
	"context"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpense retrieves an expense of a trip.
	GetExpense(ctx context.Context, tripID, expenseID, requestingUserID string) (*domain.Expense, error)

	// ListExpenses retrieves a page of a trip's expenses, newest first.
	ListExpenses(ctx context.Context, tripID, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense records an expense and its splits.
	CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense applies a partial update, re-splitting when needed.
	UpdateExpense(ctx context.Context, tripID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, tripID, expenseID, requestingUserID string) error

	// MarkSplitPaid sets the paid flag of one member's share.
	MarkSplitPaid(ctx context.Context, tripID, expenseID, targetUserID string, paid bool, requestingUserID string) (*domain.Expense, error)
}

// LedgerSvc defines the derived ledger views of a trip
type LedgerSvc interface {
	// GetExpenseSummary aggregates every expense of a trip against its budget.
	GetExpenseSummary(ctx context.Context, tripID, requestingUserID string) (*domain.ExpenseSummary, error)

	// GetSettlements plans the payments that settle every balance of a trip.
	GetSettlements(ctx context.Context, tripID, requestingUserID string) ([]domain.Settlement, error)

	// PreviewEqualSplit shows how an amount would be split equally.
	PreviewEqualSplit(ctx context.Context, tripID string, amount decimal.Decimal, participantIDs []string, requestingUserID string) ([]domain.ExpenseSplit, error)

	// WatchLedger streams a fresh snapshot on subscribe and after every expense
	// change. The channel closes when ctx is done.
	WatchLedger(ctx context.Context, tripID, requestingUserID string) (<-chan domain.LedgerSnapshot, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	LedgerSvc
}
