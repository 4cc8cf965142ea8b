package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
)

const (
	timeFormat = time.RFC3339Nano
	separator  = "|"
)

// ExpenseCursor is the position after the last expense of a page. Expenses are
// listed by expense date descending, then creation time descending, then ID.
type ExpenseCursor struct {
	ExpenseDate time.Time
	CreatedAt   time.Time
	ExpenseID   string
}

// EncodeExpenseCursor turns a cursor into an opaque URL-safe token.
func EncodeExpenseCursor(c ExpenseCursor) string {
	return EncodeFields(c.ExpenseDate.UTC().Format(timeFormat), c.CreatedAt.UTC().Format(timeFormat), c.ExpenseID)
}

// DecodeExpenseCursor parses a token produced by EncodeExpenseCursor.
// Malformed tokens yield an error wrapping apperrors.ErrValidation.
func DecodeExpenseCursor(token string) (ExpenseCursor, error) {
	parts, err := DecodeFields(token)
	if err != nil {
		return ExpenseCursor{}, err
	}
	if len(parts) != 3 {
		return ExpenseCursor{}, fmt.Errorf("%w: invalid pagination token (expected 3 fields, got %d)", apperrors.ErrValidation, len(parts))
	}
	if parts[2] == "" {
		return ExpenseCursor{}, fmt.Errorf("%w: invalid pagination token (missing expense ID)", apperrors.ErrValidation)
	}

	expenseDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return ExpenseCursor{}, fmt.Errorf("%w: invalid pagination token (expense date): %v", apperrors.ErrValidation, err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return ExpenseCursor{}, fmt.Errorf("%w: invalid pagination token (created at): %v", apperrors.ErrValidation, err)
	}

	return ExpenseCursor{ExpenseDate: expenseDate, CreatedAt: createdAt, ExpenseID: parts[2]}, nil
}

// EncodeFields joins fields into a single base64url token.
func EncodeFields(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, separator)))
}

// DecodeFields splits a token produced by EncodeFields.
func DecodeFields(token string) ([]string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pagination token (base64 decode): %v", apperrors.ErrValidation, err)
	}
	return strings.Split(string(decoded), separator), nil
}
