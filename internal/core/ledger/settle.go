package ledger

import (
	"slices"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// position is a working copy of a member balance used during matching.
type position struct {
	userID   string
	userName string
	balance  decimal.Decimal
}

// Settle plans the payments that bring every balance to within Epsilon of zero.
//
// It matches the largest creditor against the largest debtor, transfers the
// smaller of the two amounts, and moves on from whichever side is exhausted.
// Ties keep input order. The input slice is never modified.
func Settle(balances []domain.MemberBalance) []domain.Settlement {
	settlements := make([]domain.Settlement, 0)

	var creditors, debtors []position
	negEpsilon := Epsilon.Neg()
	for _, b := range balances {
		balance := RoundCents(b.Balance)
		switch {
		case balance.GreaterThan(Epsilon):
			creditors = append(creditors, position{userID: b.UserID, userName: b.UserName, balance: balance})
		case balance.LessThan(negEpsilon):
			debtors = append(debtors, position{userID: b.UserID, userName: b.UserName, balance: balance})
		}
	}

	// Largest credit first, most negative debt first.
	slices.SortStableFunc(creditors, func(a, b position) int { return b.balance.Cmp(a.balance) })
	slices.SortStableFunc(debtors, func(a, b position) int { return a.balance.Cmp(b.balance) })

	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := decimal.Min(creditor.balance, debtor.balance.Abs())
		if amount.GreaterThan(Epsilon) {
			settlements = append(settlements, domain.Settlement{
				From:     debtor.userID,
				FromName: debtor.userName,
				To:       creditor.userID,
				ToName:   creditor.userName,
				Amount:   RoundCents(amount),
			})
		}

		creditor.balance = creditor.balance.Sub(amount)
		debtor.balance = debtor.balance.Add(amount)

		if creditor.balance.Abs().LessThan(Epsilon) {
			i++
		}
		if debtor.balance.Abs().LessThan(Epsilon) {
			j++
		}
	}

	return settlements
}

// ApplySettlements returns each member's balance after the debtors have paid
// the planned settlements.
func ApplySettlements(balances []domain.MemberBalance, settlements []domain.Settlement) map[string]decimal.Decimal {
	after := make(map[string]decimal.Decimal, len(balances))
	for _, b := range balances {
		after[b.UserID] = b.Balance
	}
	for _, s := range settlements {
		after[s.From] = after[s.From].Add(s.Amount)
		after[s.To] = after[s.To].Sub(s.Amount)
	}
	return after
}
