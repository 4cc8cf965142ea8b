package domain

import (
	"github.com/shopspring/decimal"
)

// Participant identifies a member taking part in a split.
type Participant struct {
	UserID   string `json:"userID"`
	UserName string `json:"userName"`
}

// MemberBalance is one member's net position across all expenses of a trip.
// It is derived on every aggregation and never persisted.
type MemberBalance struct {
	UserID    string          `json:"userID"`
	UserName  string          `json:"userName"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	TotalOwed decimal.Decimal `json:"totalOwed"`
	Balance   decimal.Decimal `json:"balance"` // Positive = owed money, Negative = owes money
}

// ExpenseSummary is the aggregate view of a trip's expenses against its budget.
type ExpenseSummary struct {
	TotalSpent      decimal.Decimal                     `json:"totalSpent"`
	BudgetRemaining decimal.Decimal                     `json:"budgetRemaining"` // Negative when over budget
	PercentageUsed  decimal.Decimal                     `json:"percentageUsed"`  // 0 when budget <= 0
	ByCategory      map[ExpenseCategory]decimal.Decimal `json:"byCategory"`
	ByMember        []MemberBalance                     `json:"byMember"` // First-encounter order
}

// Settlement is a recommended payment from a debtor to a creditor.
type Settlement struct {
	From     string          `json:"from"`
	FromName string          `json:"fromName"`
	To       string          `json:"to"`
	ToName   string          `json:"toName"`
	Amount   decimal.Decimal `json:"amount"`
}

// LedgerSnapshot is the summary and settlement plan of a trip at one point in
// time, as pushed to live subscribers.
type LedgerSnapshot struct {
	TripID       string
	CurrencyCode string
	ExpenseCount int
	Summary      ExpenseSummary
	Settlements  []Settlement
}
