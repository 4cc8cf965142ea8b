package ledger

import (
	"fmt"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrNoParticipants is returned when a split is requested over nobody.
var ErrNoParticipants = fmt.Errorf("%w: at least one participant is required to split an expense", apperrors.ErrValidation)

// SplitEqually gives every participant round(amount/n, 2), with Paid unset.
//
// Shares are rounded one by one and the remainder is not redistributed, so the
// splits may sum to amount ± 0.01*(n-1). 100 over three people is three shares
// of 33.33.
func SplitEqually(amount decimal.Decimal, participants []domain.Participant) ([]domain.ExpenseSplit, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	share := RoundCents(amount.Div(decimal.NewFromInt(int64(len(participants)))))

	splits := make([]domain.ExpenseSplit, len(participants))
	for i, p := range participants {
		splits[i] = domain.ExpenseSplit{
			UserID:   p.UserID,
			UserName: p.UserName,
			Amount:   share,
			Paid:     false,
		}
	}
	return splits, nil
}

// SplitFull makes participant owe the whole amount.
func SplitFull(amount decimal.Decimal, participant domain.Participant) []domain.ExpenseSplit {
	return []domain.ExpenseSplit{{
		UserID:   participant.UserID,
		UserName: participant.UserName,
		Amount:   amount,
		Paid:     false,
	}}
}

// ValidateSplits checks caller-supplied shares of amount: at least one share,
// no negative share, no member named twice, and a total within
// Epsilon*max(n-1, 1) of amount.
func ValidateSplits(amount decimal.Decimal, splits []domain.ExpenseSplit) error {
	if len(splits) == 0 {
		return ErrNoParticipants
	}

	seen := make(map[string]struct{}, len(splits))
	sum := decimal.Zero
	for _, split := range splits {
		if split.UserID == "" {
			return fmt.Errorf("%w: split is missing a user ID", apperrors.ErrValidation)
		}
		if split.Amount.IsNegative() {
			return fmt.Errorf("%w: split amount for user %s must not be negative", apperrors.ErrValidation, split.UserID)
		}
		if _, dup := seen[split.UserID]; dup {
			return fmt.Errorf("%w: user %s appears more than once in the split", apperrors.ErrValidation, split.UserID)
		}
		seen[split.UserID] = struct{}{}
		sum = sum.Add(split.Amount)
	}

	slack := len(splits) - 1
	if slack < 1 {
		slack = 1
	}
	tolerance := Epsilon.Mul(decimal.NewFromInt(int64(slack)))
	if sum.Sub(amount).Abs().GreaterThan(tolerance) {
		return fmt.Errorf("%w: splits sum to %s but the expense amount is %s", apperrors.ErrValidation, sum.StringFixed(Places), amount.StringFixed(Places))
	}
	return nil
}
