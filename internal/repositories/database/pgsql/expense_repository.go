package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/trip_ledger_app/internal/models"
	"github.com/SscSPs/trip_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/trip_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense and split data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

var FULL_EXPENSE_SELECT_QUERY = `
SELECT
	e.expense_id, e.trip_id, e.title, e.amount, e.currency_code, e.category, e.expense_date,
	e.paid_by, e.paid_by_name, e.description, e.receipt_url, e.split_type,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM expenses e
`

// Newest first. expense_id breaks ties so pages never overlap.
const expenseOrderByClause = `ORDER BY e.expense_date DESC, e.created_at DESC, e.expense_id DESC`

const expenseSplitInsertQuery = `
INSERT INTO expense_splits (expense_id, position, user_id, user_name, amount, paid)
VALUES ($1, $2, $3, $4, $5, $6);
`

// getExpenses runs an expense query and attaches the splits of every row.
func (r *PgxExpenseRepository) getExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect expense rows", err)
	}
	if len(modelExpenses) == 0 {
		return []domain.Expense{}, nil
	}

	expenseIDs := make([]string, len(modelExpenses))
	for i, e := range modelExpenses {
		expenseIDs[i] = e.ExpenseID
	}
	splits, err := r.splitsByExpense(ctx, expenseIDs)
	if err != nil {
		return nil, err
	}

	expenses := make([]domain.Expense, len(modelExpenses))
	for i, e := range modelExpenses {
		expenses[i] = mapping.ToDomainExpense(e, splits[e.ExpenseID])
	}
	return expenses, nil
}

// splitsByExpense loads the splits of several expenses, each in position order.
func (r *PgxExpenseRepository) splitsByExpense(ctx context.Context, expenseIDs []string) (map[string][]models.ExpenseSplit, error) {
	query := `
		SELECT expense_id, position, user_id, user_name, amount, paid
		FROM expense_splits
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, expenseIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense splits", err)
	}
	modelSplits, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExpenseSplit])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect expense split rows", err)
	}

	byExpense := make(map[string][]models.ExpenseSplit, len(expenseIDs))
	for _, s := range modelSplits {
		byExpense[s.ExpenseID] = append(byExpense[s.ExpenseID], s)
	}
	return byExpense, nil
}

// FindExpenseByID retrieves an expense of a trip with its splits.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, tripID, expenseID string) (*domain.Expense, error) {
	query := FULL_EXPENSE_SELECT_QUERY + `WHERE e.trip_id = $1 AND e.expense_id = $2;`
	expenses, err := r.getExpenses(ctx, query, tripID, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.NewNotFoundError("expense " + expenseID + " not found in trip " + tripID)
	}
	return &expenses[0], nil
}

// ListExpensesByTrip retrieves every expense of a trip, newest first.
func (r *PgxExpenseRepository) ListExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error) {
	query := FULL_EXPENSE_SELECT_QUERY + `WHERE e.trip_id = $1 ` + expenseOrderByClause + `;`
	return r.getExpenses(ctx, query, tripID)
}

// ListExpensesByTripPage retrieves a page of a trip's expenses using token-based pagination.
// It returns the expenses, a token for the next page (if any), and an error.
func (r *PgxExpenseRepository) ListExpensesByTripPage(ctx context.Context, tripID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := FULL_EXPENSE_SELECT_QUERY + `WHERE e.trip_id = $1`
	args := []any{tripID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeExpenseCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		// Tuple comparison matches the ORDER BY columns
		query += ` AND (e.expense_date, e.created_at, e.expense_id) < ($2, $3, $4)`
		args = append(args, cursor.ExpenseDate, cursor.CreatedAt, cursor.ExpenseID)
	}

	args = append(args, fetchLimit)
	query += " " + expenseOrderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	expenses, err := r.getExpenses(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[limit-1]
		token := pagination.EncodeExpenseCursor(pagination.ExpenseCursor{
			ExpenseDate: last.ExpenseDate,
			CreatedAt:   last.CreatedAt,
			ExpenseID:   last.ExpenseID,
		})
		nextTokenVal = &token
	}
	return expenses, nextTokenVal, nil
}

// SaveExpense inserts an expense and its splits in one transaction.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m, splits := mapping.ToModelExpense(expense)

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO expenses (
				expense_id, trip_id, title, amount, currency_code, category, expense_date,
				paid_by, paid_by_name, description, receipt_url, split_type,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
		`
		_, err := tx.Exec(ctx, query,
			m.ExpenseID, m.TripID, m.Title, m.Amount, m.CurrencyCode, m.Category, m.ExpenseDate,
			m.PaidBy, m.PaidByName, m.Description, m.ReceiptURL, m.SplitType,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			switch pgErrorCode(err) {
			case pgUniqueViolation:
				return apperrors.NewConflictError("expense ID " + m.ExpenseID + " already exists")
			case pgForeignKeyViolation:
				return apperrors.NewNotFoundError("trip " + m.TripID + " not found")
			}
			return apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
		}

		return insertSplits(ctx, tx, m.ExpenseID, splits)
	})
}

// UpdateExpense updates an expense row and replaces its splits in one transaction.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m, splits := mapping.ToModelExpense(expense)

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE expenses
			SET title = $3, amount = $4, category = $5, expense_date = $6,
			    paid_by = $7, paid_by_name = $8, description = $9, receipt_url = $10, split_type = $11,
			    last_updated_at = $12, last_updated_by = $13
			WHERE trip_id = $1 AND expense_id = $2;
		`
		result, err := tx.Exec(ctx, query,
			m.TripID, m.ExpenseID, m.Title, m.Amount, m.Category, m.ExpenseDate,
			m.PaidBy, m.PaidByName, m.Description, m.ReceiptURL, m.SplitType,
			m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update expense "+m.ExpenseID, err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("expense " + m.ExpenseID + " not found in trip " + m.TripID)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM expense_splits WHERE expense_id = $1;`, m.ExpenseID); err != nil {
			return apperrors.NewAppError(500, "failed to clear splits of expense "+m.ExpenseID, err)
		}
		return insertSplits(ctx, tx, m.ExpenseID, splits)
	})
}

func insertSplits(ctx context.Context, tx pgx.Tx, expenseID string, splits []models.ExpenseSplit) error {
	batch := &pgx.Batch{}
	for _, s := range splits {
		batch.Queue(expenseSplitInsertQuery, s.ExpenseID, s.Position, s.UserID, s.UserName, s.Amount, s.Paid)
	}
	// Close the batch results to surface the error of any queued insert
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("a member appears twice in the splits of expense " + expenseID)
		}
		return apperrors.NewAppError(500, "failed to insert splits of expense "+expenseID, err)
	}
	return nil
}

// DeleteExpense removes an expense. Its splits go with it through ON DELETE CASCADE.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, tripID, expenseID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE trip_id = $1 AND expense_id = $2;`, tripID, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expenseID + " not found in trip " + tripID)
	}
	return nil
}

// SetSplitPaid flips the paid flag of one share and stamps the expense.
func (r *PgxExpenseRepository) SetSplitPaid(ctx context.Context, expenseID, userID string, paid bool, updatedBy string, updatedAt time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `
			UPDATE expense_splits SET paid = $3
			WHERE expense_id = $1 AND user_id = $2;
		`, expenseID, userID, paid)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update split of user "+userID+" in expense "+expenseID, err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("user " + userID + " has no share in expense " + expenseID)
		}

		_, err = tx.Exec(ctx, `
			UPDATE expenses SET last_updated_at = $2, last_updated_by = $3
			WHERE expense_id = $1;
		`, expenseID, updatedAt, updatedBy)
		if err != nil {
			return apperrors.NewAppError(500, "failed to stamp expense "+expenseID, err)
		}
		return nil
	})
}
