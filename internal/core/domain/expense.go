package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the reporting tag of an expense. It never affects settlement.
type ExpenseCategory string

const (
	CategoryAccommodation ExpenseCategory = "accommodation"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryFood          ExpenseCategory = "food"
	CategoryActivity      ExpenseCategory = "activity"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryOther         ExpenseCategory = "other"
)

// ExpenseCategories lists every valid category.
var ExpenseCategories = []ExpenseCategory{
	CategoryAccommodation,
	CategoryTransport,
	CategoryFood,
	CategoryActivity,
	CategoryShopping,
	CategoryOther,
}

// IsValid reports whether c is one of ExpenseCategories.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// SplitType records how the splits of an expense were produced.
type SplitType string

const (
	SplitEqual  SplitType = "equal"  // amount / n per participant, rounded to cents
	SplitCustom SplitType = "custom" // shares supplied by the caller
	SplitFull   SplitType = "full"   // a single participant owes the whole amount
)

// IsValid reports whether t is a known split type.
func (t SplitType) IsValid() bool {
	return t == SplitEqual || t == SplitCustom || t == SplitFull
}

// Expense is a monetary outlay recorded against a trip, paid by one member and
// owed by the members in SplitAmong.
type Expense struct {
	ExpenseID    string          `json:"expenseID"` // Primary Key (UUID)
	TripID       string          `json:"tripID"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"` // Non-negative
	CurrencyCode string          `json:"currencyCode"`
	Category     ExpenseCategory `json:"category"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	PaidBy       string          `json:"paidBy"`
	PaidByName   string          `json:"paidByName"`
	Description  string          `json:"description"`
	ReceiptURL   string          `json:"receiptUrl"`
	SplitType    SplitType       `json:"splitType"`
	SplitAmong   []ExpenseSplit  `json:"splitAmong"` // Ordered; shares sum to Amount within rounding tolerance
	AuditFields
}

// ExpenseSplit is the portion of an expense attributed to one member.
type ExpenseSplit struct {
	UserID   string          `json:"userID"`
	UserName string          `json:"userName"`
	Amount   decimal.Decimal `json:"amount"`
	Paid     bool            `json:"paid"`
}

// Participants returns the members named in the splits, in split order.
func (e *Expense) Participants() []Participant {
	participants := make([]Participant, len(e.SplitAmong))
	for i, s := range e.SplitAmong {
		participants[i] = Participant{UserID: s.UserID, UserName: s.UserName}
	}
	return participants
}
