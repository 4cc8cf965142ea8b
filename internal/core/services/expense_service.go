package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/core/ledger"
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultExpensePageSize = 50
	maxExpensePageSize     = 200
)

var (
	ErrCurrencyMismatch   = fmt.Errorf("%w: expense currency must match the trip currency", apperrors.ErrValidation)
	ErrFullSplitTarget    = fmt.Errorf("%w: a full split needs exactly one participant", apperrors.ErrValidation)
	ErrCustomSplitsNeeded = fmt.Errorf("%w: custom splits must be resent when the amount changes", apperrors.ErrValidation)
	ErrFeedUnavailable    = errors.New("live ledger feed not configured")
)

// expenseService records trip expenses and derives the ledger views from them.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	tripRepo    portsrepo.TripReader
	feed        *ExpenseFeed
}

// NewExpenseService creates a new ExpenseService. feed may be nil, in which
// case nothing is published and WatchLedger is unavailable.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	tripRepo portsrepo.TripReader,
	tripAuthorizer portssvc.TripAuthorizerSvc,
	feed *ExpenseFeed,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{TripAuthorizer: tripAuthorizer},
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
		feed:        feed,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense validates the request, builds the splits and stores the expense.
func (s *expenseService) CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	trip, err := s.memberTrip(ctx, tripID, creatorUserID, domain.RoleMember)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: expense title is required", apperrors.ErrValidation)
	}
	if err := validateAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, req.Category)
	}

	currency := strings.ToUpper(req.CurrencyCode)
	if currency == "" {
		currency = trip.CurrencyCode
	}
	if currency != trip.CurrencyCode {
		return nil, fmt.Errorf("%w (got %s, trip uses %s)", ErrCurrencyMismatch, currency, trip.CurrencyCode)
	}

	paidBy := req.PaidBy
	if paidBy == "" {
		paidBy = creatorUserID
	}
	payer, err := activeMember(trip, paidBy)
	if err != nil {
		return nil, err
	}

	splitType := req.SplitType
	if splitType == "" {
		splitType = domain.SplitEqual
	}
	splits, err := buildSplits(trip, req.Amount, splitType, req.Participants, req.Splits)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		TripID:       tripID,
		Title:        title,
		Amount:       req.Amount,
		CurrencyCode: currency,
		Category:     req.Category,
		ExpenseDate:  req.ExpenseDate,
		PaidBy:       payer.UserID,
		PaidByName:   payer.Name(),
		Description:  req.Description,
		ReceiptURL:   req.ReceiptURL,
		SplitType:    splitType,
		SplitAmong:   splits,
		AuditFields:  domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("trip_id", tripID),
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()),
		slog.String("split_type", string(splitType)),
		slog.Int("participants", len(splits)))

	s.publish(ctx, tripID)
	return &expense, nil
}

// GetExpense retrieves an expense of a trip
func (s *expenseService) GetExpense(ctx context.Context, tripID, expenseID, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, tripID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense",
				slog.String("trip_id", tripID),
				slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves a page of a trip's expenses, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, tripID, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultExpensePageSize
	}
	if limit > maxExpensePageSize {
		limit = maxExpensePageSize
	}

	expenses, nextToken, err := s.expenseRepo.ListExpensesByTripPage(ctx, tripID, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list expenses",
				slog.String("trip_id", tripID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Expenses listed successfully",
		slog.String("trip_id", tripID),
		slog.Int("count", len(expenses)))
	return &dto.ListExpensesResponse{
		Expenses:  dto.ToExpenseResponses(expenses),
		NextToken: nextToken,
	}, nil
}

// UpdateExpense applies the non-nil fields of req. New splits make the expense
// custom. An amount change re-splits equal and full expenses over the same
// participants and keeps their paid flags.
func (s *expenseService) UpdateExpense(ctx context.Context, tripID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	trip, expense, err := s.editableExpense(ctx, tripID, expenseID, requestingUserID)
	if err != nil {
		return nil, err
	}

	amountChanged := false
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: expense title is required", apperrors.ErrValidation)
		}
		expense.Title = title
	}
	if req.Amount != nil {
		if err := validateAmount("amount", *req.Amount); err != nil {
			return nil, err
		}
		amountChanged = !req.Amount.Equal(expense.Amount)
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, *req.Category)
		}
		expense.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.ReceiptURL != nil {
		expense.ReceiptURL = *req.ReceiptURL
	}
	if req.PaidBy != nil {
		payer, err := activeMember(trip, *req.PaidBy)
		if err != nil {
			return nil, err
		}
		expense.PaidBy = payer.UserID
		expense.PaidByName = payer.Name()
	}

	switch {
	case req.Splits != nil:
		splits, err := buildSplits(trip, expense.Amount, domain.SplitCustom, nil, req.Splits)
		if err != nil {
			return nil, err
		}
		expense.SplitType = domain.SplitCustom
		expense.SplitAmong = carryPaidFlags(expense.SplitAmong, splits)
	case amountChanged:
		splits, err := resplit(expense)
		if err != nil {
			return nil, err
		}
		expense.SplitAmong = carryPaidFlags(expense.SplitAmong, splits)
	}

	expense.Touch(requestingUserID, time.Now())

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense",
			slog.String("trip_id", tripID),
			slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.LogInfo(ctx, "Expense updated successfully",
		slog.String("trip_id", tripID),
		slog.String("expense_id", expenseID),
		slog.String("updated_by", requestingUserID))

	s.publish(ctx, tripID)
	return expense, nil
}

// DeleteExpense removes an expense. Its creator, its payer and trip admins may delete it.
func (s *expenseService) DeleteExpense(ctx context.Context, tripID, expenseID, requestingUserID string) error {
	if _, _, err := s.editableExpense(ctx, tripID, expenseID, requestingUserID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, tripID, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense",
				slog.String("trip_id", tripID),
				slog.String("expense_id", expenseID))
		}
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully",
		slog.String("trip_id", tripID),
		slog.String("expense_id", expenseID),
		slog.String("deleted_by", requestingUserID))

	s.publish(ctx, tripID)
	return nil
}

// MarkSplitPaid sets the paid flag of one member's share. The member, the payer
// and trip admins may change it. The flag never changes balances.
func (s *expenseService) MarkSplitPaid(ctx context.Context, tripID, expenseID, targetUserID string, paid bool, requestingUserID string) (*domain.Expense, error) {
	trip, err := s.memberTrip(ctx, tripID, requestingUserID, domain.RoleMember)
	if err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, tripID, expenseID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, split := range expense.SplitAmong {
		if split.UserID == targetUserID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s has no share in expense %s", targetUserID, expenseID))
	}

	if requestingUserID != targetUserID && requestingUserID != expense.PaidBy && !isAdmin(trip, requestingUserID) {
		s.LogWarn(ctx, "User may not change the paid flag of this share",
			slog.String("expense_id", expenseID),
			slog.String("target_user_id", targetUserID))
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.expenseRepo.SetSplitPaid(ctx, expenseID, targetUserID, paid, requestingUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update split paid flag",
			slog.String("expense_id", expenseID),
			slog.String("target_user_id", targetUserID))
		return nil, err
	}

	expense.SplitAmong[idx].Paid = paid
	expense.Touch(requestingUserID, now)

	s.LogInfo(ctx, "Split paid flag updated",
		slog.String("expense_id", expenseID),
		slog.String("target_user_id", targetUserID),
		slog.Bool("paid", paid))

	s.publish(ctx, tripID)
	return expense, nil
}

// GetExpenseSummary aggregates every expense of the trip against its budget.
func (s *expenseService) GetExpenseSummary(ctx context.Context, tripID, requestingUserID string) (*domain.ExpenseSummary, error) {
	trip, expenses, err := s.tripLedger(ctx, tripID, requestingUserID)
	if err != nil {
		return nil, err
	}

	summary := ledger.Aggregate(expenses, trip.Budget)
	return &summary, nil
}

// GetSettlements plans who pays whom to settle the trip.
func (s *expenseService) GetSettlements(ctx context.Context, tripID, requestingUserID string) ([]domain.Settlement, error) {
	trip, expenses, err := s.tripLedger(ctx, tripID, requestingUserID)
	if err != nil {
		return nil, err
	}

	summary := ledger.Aggregate(expenses, trip.Budget)
	settlements := ledger.Settle(summary.ByMember)

	s.LogDebug(ctx, "Settlements planned",
		slog.String("trip_id", tripID),
		slog.Int("members", len(summary.ByMember)),
		slog.Int("settlements", len(settlements)))
	return settlements, nil
}

// PreviewEqualSplit shows the equal split of amount without storing anything.
func (s *expenseService) PreviewEqualSplit(ctx context.Context, tripID string, amount decimal.Decimal, participantIDs []string, requestingUserID string) ([]domain.ExpenseSplit, error) {
	trip, err := s.memberTrip(ctx, tripID, requestingUserID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	if err := validateAmount("amount", amount); err != nil {
		return nil, err
	}

	participants, err := resolveParticipants(trip, participantIDs)
	if err != nil {
		return nil, err
	}
	return ledger.SplitEqually(amount, participants)
}

// WatchLedger sends the current snapshot at once and a new one after every
// expense change of the trip.
func (s *expenseService) WatchLedger(ctx context.Context, tripID, requestingUserID string) (<-chan domain.LedgerSnapshot, error) {
	if s.feed == nil {
		return nil, ErrFeedUnavailable
	}

	trip, err := s.memberTrip(ctx, tripID, requestingUserID, domain.RoleMember)
	if err != nil {
		return nil, err
	}

	// Subscribe before the first read so no change slips in between
	updates, cancel := s.feed.Subscribe(tripID)

	expenses, err := s.expenseRepo.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		cancel()
		s.LogError(ctx, err, "Failed to load expenses for ledger stream",
			slog.String("trip_id", tripID))
		return nil, err
	}

	out := make(chan domain.LedgerSnapshot, 1)
	out <- buildSnapshot(trip, expenses)

	go func() {
		defer close(out)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case list, ok := <-updates:
				if !ok {
					return
				}
				fresh, err := s.tripRepo.FindTripByID(ctx, tripID)
				switch {
				case err == nil:
					trip = fresh
				case errors.Is(err, apperrors.ErrNotFound):
					return
				default:
					s.LogWarn(ctx, "Using cached trip for ledger snapshot",
						slog.String("trip_id", tripID),
						slog.String("error", err.Error()))
				}

				select {
				case out <- buildSnapshot(trip, list):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	s.LogDebug(ctx, "Ledger stream opened", slog.String("trip_id", tripID))
	return out, nil
}

// memberTrip authorizes the user and loads the trip with its members.
func (s *expenseService) memberTrip(ctx context.Context, tripID, userID string, role domain.TripRole) (*domain.Trip, error) {
	if err := s.AuthorizeUser(ctx, userID, tripID, role); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load trip",
				slog.String("trip_id", tripID))
		}
		return nil, err
	}
	return trip, nil
}

// tripLedger loads the trip and all of its expenses.
func (s *expenseService) tripLedger(ctx context.Context, tripID, userID string) (*domain.Trip, []domain.Expense, error) {
	trip, err := s.memberTrip(ctx, tripID, userID, domain.RoleMember)
	if err != nil {
		return nil, nil, err
	}

	expenses, err := s.expenseRepo.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trip expenses",
			slog.String("trip_id", tripID))
		return nil, nil, err
	}
	return trip, expenses, nil
}

// editableExpense loads an expense the user may change: they created it, paid
// it, or administer the trip.
func (s *expenseService) editableExpense(ctx context.Context, tripID, expenseID, userID string) (*domain.Trip, *domain.Expense, error) {
	trip, err := s.memberTrip(ctx, tripID, userID, domain.RoleMember)
	if err != nil {
		return nil, nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, tripID, expenseID)
	if err != nil {
		return nil, nil, err
	}

	if userID != expense.CreatedBy && userID != expense.PaidBy && !isAdmin(trip, userID) {
		s.LogWarn(ctx, "User may not modify expense",
			slog.String("expense_id", expenseID),
			slog.String("user_id", userID))
		return nil, nil, apperrors.ErrForbidden
	}
	return trip, expense, nil
}

// publish pushes the trip's current expense list to live subscribers. The
// change is already stored, so failures are only logged.
func (s *expenseService) publish(ctx context.Context, tripID string) {
	if s.feed == nil || !s.feed.HasSubscribers(tripID) {
		return
	}

	expenses, err := s.expenseRepo.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for live feed",
			slog.String("trip_id", tripID))
		return
	}
	s.feed.Publish(tripID, expenses)
}

func buildSnapshot(trip *domain.Trip, expenses []domain.Expense) domain.LedgerSnapshot {
	summary := ledger.Aggregate(expenses, trip.Budget)
	return domain.LedgerSnapshot{
		TripID:       trip.TripID,
		CurrencyCode: trip.CurrencyCode,
		ExpenseCount: len(expenses),
		Summary:      summary,
		Settlements:  ledger.Settle(summary.ByMember),
	}
}

// buildSplits produces the shares of amount for the given split type.
func buildSplits(trip *domain.Trip, amount decimal.Decimal, splitType domain.SplitType, participantIDs []string, shares []dto.SplitShareRequest) ([]domain.ExpenseSplit, error) {
	switch splitType {
	case domain.SplitEqual:
		participants, err := resolveParticipants(trip, participantIDs)
		if err != nil {
			return nil, err
		}
		return ledger.SplitEqually(amount, participants)

	case domain.SplitFull:
		if len(participantIDs) != 1 {
			return nil, ErrFullSplitTarget
		}
		participants, err := resolveParticipants(trip, participantIDs)
		if err != nil {
			return nil, err
		}
		return ledger.SplitFull(amount, participants[0]), nil

	case domain.SplitCustom:
		splits := make([]domain.ExpenseSplit, len(shares))
		for i, share := range shares {
			member, err := activeMember(trip, share.UserID)
			if err != nil {
				return nil, err
			}
			if err := validateAmount("split amount", share.Amount); err != nil {
				return nil, err
			}
			splits[i] = domain.ExpenseSplit{
				UserID:   member.UserID,
				UserName: member.Name(),
				Amount:   share.Amount,
			}
		}
		if err := ledger.ValidateSplits(amount, splits); err != nil {
			return nil, err
		}
		return splits, nil
	}

	return nil, fmt.Errorf("%w: unknown split type %q", apperrors.ErrValidation, splitType)
}

// resplit recomputes the shares of an equal or full expense after its amount changed.
func resplit(expense *domain.Expense) ([]domain.ExpenseSplit, error) {
	participants := expense.Participants()
	switch expense.SplitType {
	case domain.SplitEqual:
		return ledger.SplitEqually(expense.Amount, participants)
	case domain.SplitFull:
		if len(participants) != 1 {
			return nil, ErrFullSplitTarget
		}
		return ledger.SplitFull(expense.Amount, participants[0]), nil
	}
	return nil, ErrCustomSplitsNeeded
}

// resolveParticipants maps user IDs to trip members. No IDs means every
// accepted member.
func resolveParticipants(trip *domain.Trip, userIDs []string) ([]domain.Participant, error) {
	if len(userIDs) == 0 {
		return trip.AcceptedParticipants(), nil
	}

	participants := make([]domain.Participant, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, dup := seen[userID]; dup {
			return nil, fmt.Errorf("%w: participant %s listed more than once", apperrors.ErrValidation, userID)
		}
		seen[userID] = struct{}{}

		member, err := activeMember(trip, userID)
		if err != nil {
			return nil, err
		}
		participants = append(participants, domain.Participant{UserID: member.UserID, UserName: member.Name()})
	}
	return participants, nil
}

// activeMember returns the membership of userID unless it is missing or declined.
func activeMember(trip *domain.Trip, userID string) (domain.TripMember, error) {
	member, ok := trip.FindMember(userID)
	if !ok || member.Status == domain.MemberDeclined {
		return domain.TripMember{}, fmt.Errorf("%w: user %s is not a member of the trip", apperrors.ErrValidation, userID)
	}
	return member, nil
}

func isAdmin(trip *domain.Trip, userID string) bool {
	member, ok := trip.FindMember(userID)
	return ok && member.Role == domain.RoleAdmin
}

// carryPaidFlags keeps the paid flag of members present in both old and fresh.
func carryPaidFlags(old, fresh []domain.ExpenseSplit) []domain.ExpenseSplit {
	paid := make(map[string]bool, len(old))
	for _, split := range old {
		paid[split.UserID] = split.Paid
	}
	for i := range fresh {
		fresh[i].Paid = paid[fresh[i].UserID]
	}
	return fresh
}

// validateAmount rejects negative amounts and fractions of a cent.
func validateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	if !amount.Equal(ledger.RoundCents(amount)) {
		return fmt.Errorf("%w: %s has more than two decimal places", apperrors.ErrValidation, field)
	}
	return nil
}
