package ledger

import (
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// memberTotals accumulates what one member paid and owes while scanning expenses.
type memberTotals struct {
	userID   string
	userName string
	paid     decimal.Decimal
	owed     decimal.Decimal
}

// Aggregate reduces expenses into an ExpenseSummary measured against budget.
//
// Members appear in ByMember in the order their ids are first seen, scanning
// each expense payer first and then its splits. The first name seen for an id
// is the one reported.
func Aggregate(expenses []domain.Expense, budget decimal.Decimal) domain.ExpenseSummary {
	totalSpent := decimal.Zero
	byCategory := make(map[domain.ExpenseCategory]decimal.Decimal)

	totals := make(map[string]*memberTotals)
	order := make([]string, 0)
	member := func(userID, userName string) *memberTotals {
		m, ok := totals[userID]
		if !ok {
			m = &memberTotals{userID: userID, userName: userName, paid: decimal.Zero, owed: decimal.Zero}
			totals[userID] = m
			order = append(order, userID)
		}
		return m
	}

	for _, expense := range expenses {
		totalSpent = totalSpent.Add(expense.Amount)

		if spent, ok := byCategory[expense.Category]; ok {
			byCategory[expense.Category] = spent.Add(expense.Amount)
		} else {
			byCategory[expense.Category] = expense.Amount
		}

		payer := member(expense.PaidBy, expense.PaidByName)
		payer.paid = payer.paid.Add(expense.Amount)

		for _, split := range expense.SplitAmong {
			debtor := member(split.UserID, split.UserName)
			debtor.owed = debtor.owed.Add(split.Amount)
		}
	}

	byMember := make([]domain.MemberBalance, 0, len(order))
	for _, userID := range order {
		m := totals[userID]
		byMember = append(byMember, domain.MemberBalance{
			UserID:    m.userID,
			UserName:  m.userName,
			TotalPaid: m.paid,
			TotalOwed: m.owed,
			Balance:   m.paid.Sub(m.owed),
		})
	}

	percentageUsed := decimal.Zero
	if budget.IsPositive() {
		percentageUsed = totalSpent.Div(budget).Mul(hundred)
	}

	return domain.ExpenseSummary{
		TotalSpent:      totalSpent,
		BudgetRemaining: budget.Sub(totalSpent),
		PercentageUsed:  percentageUsed,
		ByCategory:      byCategory,
		ByMember:        byMember,
	}
}
