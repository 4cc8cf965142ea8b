package dto

import (
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// SplitPreviewRequest asks how an amount would be split equally.
// An empty Participants list means every accepted member of the trip.
type SplitPreviewRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	Participants []string        `json:"participants" binding:"omitempty,dive,required"`
}

// SplitPreviewResponse shows the shares and the cents left undistributed.
type SplitPreviewResponse struct {
	Splits   []ExpenseSplitResponse `json:"splits"`
	Total    string                 `json:"total"`
	Residual string                 `json:"residual"` // amount - total
}

// ToSplitPreviewResponse builds the preview of splitting amount.
func ToSplitPreviewResponse(amount decimal.Decimal, splits []domain.ExpenseSplit) SplitPreviewResponse {
	total := decimal.Zero
	for _, s := range splits {
		total = total.Add(s.Amount)
	}
	return SplitPreviewResponse{
		Splits:   ToExpenseSplitResponses(splits),
		Total:    utils.FormatMoney(total),
		Residual: utils.FormatMoney(amount.Sub(total)),
	}
}

// MemberBalanceResponse is one member's net position.
type MemberBalanceResponse struct {
	UserID    string `json:"userID"`
	UserName  string `json:"userName"`
	TotalPaid string `json:"totalPaid"`
	TotalOwed string `json:"totalOwed"`
	Balance   string `json:"balance"`
}

// ExpenseSummaryResponse is the aggregate view of a trip's expenses.
type ExpenseSummaryResponse struct {
	TotalSpent      string                  `json:"totalSpent"`
	BudgetRemaining string                  `json:"budgetRemaining"`
	PercentageUsed  string                  `json:"percentageUsed"`
	ByCategory      map[string]string       `json:"byCategory"`
	ByMember        []MemberBalanceResponse `json:"byMember"`
}

// ToExpenseSummaryResponse converts a domain.ExpenseSummary to DTO.
func ToExpenseSummaryResponse(s *domain.ExpenseSummary) ExpenseSummaryResponse {
	byCategory := make(map[string]string, len(s.ByCategory))
	for category, amount := range s.ByCategory {
		byCategory[string(category)] = utils.FormatMoney(amount)
	}
	byMember := make([]MemberBalanceResponse, len(s.ByMember))
	for i, m := range s.ByMember {
		byMember[i] = MemberBalanceResponse{
			UserID:    m.UserID,
			UserName:  m.UserName,
			TotalPaid: utils.FormatMoney(m.TotalPaid),
			TotalOwed: utils.FormatMoney(m.TotalOwed),
			Balance:   utils.FormatMoney(m.Balance),
		}
	}
	return ExpenseSummaryResponse{
		TotalSpent:      utils.FormatMoney(s.TotalSpent),
		BudgetRemaining: utils.FormatMoney(s.BudgetRemaining),
		PercentageUsed:  utils.FormatPercentage(s.PercentageUsed),
		ByCategory:      byCategory,
		ByMember:        byMember,
	}
}

// SettlementResponse is a recommended payment.
type SettlementResponse struct {
	From     string `json:"from"`
	FromName string `json:"fromName"`
	To       string `json:"to"`
	ToName   string `json:"toName"`
	Amount   string `json:"amount"`
}

// SettlementsResponse wraps the settlement plan of a trip.
type SettlementsResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
}

// ToSettlementsResponse converts domain settlements to DTO.
func ToSettlementsResponse(settlements []domain.Settlement) SettlementsResponse {
	list := make([]SettlementResponse, len(settlements))
	for i, s := range settlements {
		list[i] = SettlementResponse{
			From:     s.From,
			FromName: s.FromName,
			To:       s.To,
			ToName:   s.ToName,
			Amount:   utils.FormatMoney(s.Amount),
		}
	}
	return SettlementsResponse{Settlements: list}
}

// LedgerSnapshotResponse is the payload of a ledger stream event.
type LedgerSnapshotResponse struct {
	TripID       string                 `json:"tripID"`
	CurrencyCode string                 `json:"currencyCode"`
	ExpenseCount int                    `json:"expenseCount"`
	Summary      ExpenseSummaryResponse `json:"summary"`
	Settlements  []SettlementResponse   `json:"settlements"`
}

// ToLedgerSnapshotResponse converts a domain.LedgerSnapshot to DTO.
func ToLedgerSnapshotResponse(s *domain.LedgerSnapshot) LedgerSnapshotResponse {
	return LedgerSnapshotResponse{
		TripID:       s.TripID,
		CurrencyCode: s.CurrencyCode,
		ExpenseCount: s.ExpenseCount,
		Summary:      ToExpenseSummaryResponse(&s.Summary),
		Settlements:  ToSettlementsResponse(s.Settlements).Settlements,
	}
}
