package mapping

import (
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense and its split rows
func ToModelExpense(d domain.Expense) (models.Expense, []models.ExpenseSplit) {
	expense := models.Expense{
		ExpenseID:    d.ExpenseID,
		TripID:       d.TripID,
		Title:        d.Title,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Category:     string(d.Category),
		ExpenseDate:  d.ExpenseDate,
		PaidBy:       d.PaidBy,
		PaidByName:   d.PaidByName,
		Description:  d.Description,
		ReceiptURL:   d.ReceiptURL,
		SplitType:    string(d.SplitType),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}

	splits := make([]models.ExpenseSplit, len(d.SplitAmong))
	for i, s := range d.SplitAmong {
		splits[i] = models.ExpenseSplit{
			ExpenseID: d.ExpenseID,
			Position:  i,
			UserID:    s.UserID,
			UserName:  s.UserName,
			Amount:    s.Amount,
			Paid:      s.Paid,
		}
	}
	return expense, splits
}

// ToDomainExpense converts a model Expense and its split rows, already in
// position order, to a domain Expense
func ToDomainExpense(m models.Expense, splits []models.ExpenseSplit) domain.Expense {
	splitAmong := make([]domain.ExpenseSplit, len(splits))
	for i, s := range splits {
		splitAmong[i] = domain.ExpenseSplit{
			UserID:   s.UserID,
			UserName: s.UserName,
			Amount:   s.Amount,
			Paid:     s.Paid,
		}
	}

	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		TripID:       m.TripID,
		Title:        m.Title,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Category:     domain.ExpenseCategory(m.Category),
		ExpenseDate:  m.ExpenseDate,
		PaidBy:       m.PaidBy,
		PaidByName:   m.PaidByName,
		Description:  m.Description,
		ReceiptURL:   m.ReceiptURL,
		SplitType:    domain.SplitType(m.SplitType),
		SplitAmong:   splitAmong,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
