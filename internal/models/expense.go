package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID    string          `db:"expense_id"`
	TripID       string          `db:"trip_id"`
	Title        string          `db:"title"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Category     string          `db:"category"`
	ExpenseDate  time.Time       `db:"expense_date"`
	PaidBy       string          `db:"paid_by"`
	PaidByName   string          `db:"paid_by_name"`
	Description  string          `db:"description"`
	ReceiptURL   string          `db:"receipt_url"`
	SplitType    string          `db:"split_type"`
	AuditFields
}

// ExpenseSplit is a row of the expense_splits table. Position keeps the
// order in which shares were given.
type ExpenseSplit struct {
	ExpenseID string          `db:"expense_id"`
	Position  int             `db:"position"`
	UserID    string          `db:"user_id"`
	UserName  string          `db:"user_name"`
	Amount    decimal.Decimal `db:"amount"`
	Paid      bool            `db:"paid"`
}
