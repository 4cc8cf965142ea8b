package dto

import (
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// SplitShareRequest is one caller-supplied share of a custom split.
type SplitShareRequest struct {
	UserID string          `json:"userID" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateExpenseRequest defines the data needed to record an expense.
//
// SplitType defaults to "equal". Equal splits divide the amount over
// Participants, or over every accepted member when Participants is empty.
// Full splits charge the single entry of Participants. Custom splits use Splits.
type CreateExpenseRequest struct {
	Title        string                 `json:"title" binding:"required,max=200"`
	Amount       decimal.Decimal        `json:"amount"`
	CurrencyCode string                 `json:"currencyCode" binding:"omitempty,iso4217"`
	Category     domain.ExpenseCategory `json:"category" binding:"required,expense_category"`
	ExpenseDate  time.Time              `json:"expenseDate" binding:"required"`
	PaidBy       string                 `json:"paidBy"` // Defaults to the caller
	Description  string                 `json:"description" binding:"max=2000"`
	ReceiptURL   string                 `json:"receiptUrl" binding:"omitempty,url"`
	SplitType    domain.SplitType       `json:"splitType" binding:"omitempty,split_type"`
	Participants []string               `json:"participants" binding:"omitempty,dive,required"`
	Splits       []SplitShareRequest    `json:"splits" binding:"omitempty,dive"`
}

// UpdateExpenseRequest defines the fields of an expense that can be changed.
// Nil fields are left untouched. Sending Splits turns the expense into a
// custom split.
type UpdateExpenseRequest struct {
	Title       *string                 `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Amount      *decimal.Decimal        `json:"amount,omitempty"`
	Category    *domain.ExpenseCategory `json:"category,omitempty" binding:"omitempty,expense_category"`
	ExpenseDate *time.Time              `json:"expenseDate,omitempty"`
	PaidBy      *string                 `json:"paidBy,omitempty" binding:"omitempty,min=1"`
	Description *string                 `json:"description,omitempty" binding:"omitempty,max=2000"`
	ReceiptURL  *string                 `json:"receiptUrl,omitempty" binding:"omitempty,url"`
	Splits      []SplitShareRequest     `json:"splits,omitempty" binding:"omitempty,dive"`
}

// MarkSplitPaidRequest toggles the paid flag of one share.
type MarkSplitPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ExpenseSplitResponse defines the data returned for one share of an expense.
type ExpenseSplitResponse struct {
	UserID   string `json:"userID"`
	UserName string `json:"userName"`
	Amount   string `json:"amount"`
	Paid     bool   `json:"paid"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string                 `json:"expenseID"`
	TripID        string                 `json:"tripID"`
	Title         string                 `json:"title"`
	Amount        string                 `json:"amount"`
	CurrencyCode  string                 `json:"currencyCode"`
	Category      domain.ExpenseCategory `json:"category"`
	ExpenseDate   time.Time              `json:"expenseDate"`
	PaidBy        string                 `json:"paidBy"`
	PaidByName    string                 `json:"paidByName"`
	Description   string                 `json:"description,omitempty"`
	ReceiptURL    string                 `json:"receiptUrl,omitempty"`
	SplitType     domain.SplitType       `json:"splitType"`
	SplitAmong    []ExpenseSplitResponse `json:"splitAmong"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseSplitResponses converts domain splits to DTOs.
func ToExpenseSplitResponses(splits []domain.ExpenseSplit) []ExpenseSplitResponse {
	responses := make([]ExpenseSplitResponse, len(splits))
	for i, s := range splits {
		responses[i] = ExpenseSplitResponse{
			UserID:   s.UserID,
			UserName: s.UserName,
			Amount:   utils.FormatMoney(s.Amount),
			Paid:     s.Paid,
		}
	}
	return responses
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		TripID:        e.TripID,
		Title:         e.Title,
		Amount:        utils.FormatMoney(e.Amount),
		CurrencyCode:  e.CurrencyCode,
		Category:      e.Category,
		ExpenseDate:   e.ExpenseDate,
		PaidBy:        e.PaidBy,
		PaidByName:    e.PaidByName,
		Description:   e.Description,
		ReceiptURL:    e.ReceiptURL,
		SplitType:     e.SplitType,
		SplitAmong:    ToExpenseSplitResponses(e.SplitAmong),
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to []ExpenseResponse.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
