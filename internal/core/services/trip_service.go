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
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errNoAuthorizer = errors.New("trip authorizer not configured")
	ErrLastAdmin    = fmt.Errorf("%w: a trip must keep at least one admin", apperrors.ErrValidation)
)

// tripService implements the TripSvcFacade interface
type tripService struct {
	BaseService
	tripRepo portsrepo.TripRepositoryFacade
	feed     *ExpenseFeed
	expenses portsrepo.ExpenseReader
}

// TripServiceOption configures optional dependencies of the trip service.
type TripServiceOption func(*tripService)

// WithTripFeed lets the trip service end live ledger streams of deleted trips.
func WithTripFeed(feed *ExpenseFeed) TripServiceOption {
	return func(s *tripService) {
		s.feed = feed
	}
}

// WithTripExpenses lets the trip service refresh live ledger streams when a
// budget change alters the summary.
func WithTripExpenses(expenses portsrepo.ExpenseReader) TripServiceOption {
	return func(s *tripService) {
		s.expenses = expenses
	}
}

// NewTripService creates a new trip service with the provided dependencies
func NewTripService(tripRepo portsrepo.TripRepositoryFacade, opts ...TripServiceOption) portssvc.TripSvcFacade {
	s := &tripService{tripRepo: tripRepo}
	s.TripAuthorizer = s
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure tripService implements the TripSvcFacade interface
var _ portssvc.TripSvcFacade = (*tripService)(nil)

// CreateTrip creates a trip in the planning state with the creator as its accepted admin.
func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creator domain.TripMember) (*domain.Trip, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: trip name is required", apperrors.ErrValidation)
	}
	if err := validateTripDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if err := validateBudget(req.Budget); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tripID := uuid.NewString()

	creator.TripID = tripID
	creator.Role = domain.RoleAdmin
	creator.Status = domain.MemberAccepted
	creator.JoinedAt = now

	trip := domain.Trip{
		TripID:       tripID,
		Name:         name,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Budget:       req.Budget,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Description:  req.Description,
		CoverImage:   req.CoverImage,
		Status:       domain.TripPlanning,
		Members:      []domain.TripMember{creator},
		AuditFields:  domain.NewAuditFields(creator.UserID, now),
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		s.LogError(ctx, err, "Failed to save trip",
			slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.LogInfo(ctx, "Trip created successfully",
		slog.String("trip_id", tripID),
		slog.String("creator_id", creator.UserID))
	return &trip, nil
}

// GetTrip retrieves a trip with its members
func (s *tripService) GetTrip(ctx context.Context, tripID, requestingUserID string) (*domain.Trip, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find trip by ID",
				slog.String("trip_id", tripID))
		}
		return nil, err
	}
	return trip, nil
}

// ListUserTrips retrieves all trips a user belongs to
func (s *tripService) ListUserTrips(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTripsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trips for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if trips == nil {
		return []domain.Trip{}, nil
	}

	s.LogDebug(ctx, "Trips listed successfully",
		slog.Int("count", len(trips)),
		slog.String("user_id", userID))
	return trips, nil
}

// UpdateTrip applies the non-nil fields of req. Admins only.
func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, requestingUserID string) (*domain.Trip, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: trip name is required", apperrors.ErrValidation)
		}
		trip.Name = name
	}
	if req.Destination != nil {
		trip.Destination = req.Destination
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if err := validateTripDates(trip.StartDate, trip.EndDate); err != nil {
		return nil, err
	}
	if req.Budget != nil {
		if err := validateBudget(*req.Budget); err != nil {
			return nil, err
		}
		trip.Budget = *req.Budget
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.CoverImage != nil {
		trip.CoverImage = *req.CoverImage
	}
	if req.Status != nil {
		trip.Status = *req.Status
	}

	trip.Touch(requestingUserID, time.Now())

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		s.LogError(ctx, err, "Failed to update trip",
			slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	s.LogInfo(ctx, "Trip updated successfully",
		slog.String("trip_id", tripID),
		slog.String("updated_by", requestingUserID))

	if req.Budget != nil {
		s.republish(ctx, tripID)
	}
	return trip, nil
}

// republish pushes the current expenses to live subscribers so their
// snapshots pick up the changed trip.
func (s *tripService) republish(ctx context.Context, tripID string) {
	if s.feed == nil || s.expenses == nil || !s.feed.HasSubscribers(tripID) {
		return
	}

	expenses, err := s.expenses.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for live feed",
			slog.String("trip_id", tripID))
		return
	}
	s.feed.Publish(tripID, expenses)
}

// DeleteTrip removes a trip and everything recorded against it. Admins only.
func (s *tripService) DeleteTrip(ctx context.Context, tripID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete trip",
				slog.String("trip_id", tripID))
		}
		return err
	}

	if s.feed != nil {
		s.feed.CloseTrip(tripID)
	}

	s.LogInfo(ctx, "Trip deleted successfully",
		slog.String("trip_id", tripID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

// AddTripMember invites a user to a trip. The invitation starts pending.
func (s *tripService) AddTripMember(ctx context.Context, tripID string, req dto.AddTripMemberRequest, requestingUserID string) (*domain.TripMember, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	// Only admins get here, and they are members already
	if req.UserID == requestingUserID {
		return nil, apperrors.NewConflictError("user " + req.UserID + " is already a member of trip " + tripID)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}

	member := domain.TripMember{
		TripID:      tripID,
		UserID:      req.UserID,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Role:        role,
		Status:      domain.MemberPending,
		JoinedAt:    time.Now().UTC(),
	}

	if err := s.tripRepo.AddTripMember(ctx, member); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to add member to trip",
				slog.String("trip_id", tripID),
				slog.String("target_user_id", req.UserID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Member invited to trip",
		slog.String("trip_id", tripID),
		slog.String("target_user_id", req.UserID),
		slog.String("role", string(role)),
		slog.String("added_by", requestingUserID))
	return &member, nil
}

// RemoveTripMember removes a member. Admins may remove anyone and members may
// remove themselves, but the last admin always stays.
func (s *tripService) RemoveTripMember(ctx context.Context, tripID, targetUserID, requestingUserID string) error {
	requiredRole := domain.RoleAdmin
	if targetUserID == requestingUserID {
		requiredRole = domain.RoleMember
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, requiredRole); err != nil {
		return err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return err
	}

	member, ok := trip.FindMember(targetUserID)
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("user %s is not a member of trip %s", targetUserID, tripID))
	}
	if member.Role == domain.RoleAdmin && trip.AdminCount() <= 1 {
		return ErrLastAdmin
	}

	if err := s.tripRepo.RemoveTripMember(ctx, tripID, targetUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to remove member from trip",
				slog.String("trip_id", tripID),
				slog.String("target_user_id", targetUserID))
		}
		return err
	}

	s.LogInfo(ctx, "Member removed from trip",
		slog.String("trip_id", tripID),
		slog.String("target_user_id", targetUserID),
		slog.String("removed_by", requestingUserID))
	return nil
}

// UpdateMemberRole changes a member's role. Admins only.
func (s *tripService) UpdateMemberRole(ctx context.Context, tripID, targetUserID string, role domain.TripRole, requestingUserID string) (*domain.TripMember, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	member, ok := trip.FindMember(targetUserID)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s is not a member of trip %s", targetUserID, tripID))
	}
	if member.Role == role {
		return &member, nil
	}
	if member.Role == domain.RoleAdmin && trip.AdminCount() <= 1 {
		return nil, ErrLastAdmin
	}

	member.Role = role
	if err := s.tripRepo.UpdateTripMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to update member role",
			slog.String("trip_id", tripID),
			slog.String("target_user_id", targetUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Member role updated",
		slog.String("trip_id", tripID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)),
		slog.String("updated_by", requestingUserID))
	return &member, nil
}

// RespondToInvitation accepts or declines the caller's pending invitation.
func (s *tripService) RespondToInvitation(ctx context.Context, tripID, userID string, accept bool) (*domain.TripMember, error) {
	member, err := s.tripRepo.FindTripMember(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.MemberPending {
		return nil, fmt.Errorf("%w: invitation already %s", apperrors.ErrValidation, member.Status)
	}

	member.Status = domain.MemberDeclined
	if accept {
		member.Status = domain.MemberAccepted
	}

	if err := s.tripRepo.UpdateTripMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to record invitation response",
			slog.String("trip_id", tripID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Invitation answered",
		slog.String("trip_id", tripID),
		slog.String("user_id", userID),
		slog.String("status", string(member.Status)))
	return member, nil
}

// AuthorizeTripAction checks if a user has the required role (or higher) within a trip.
// Returns apperrors.ErrNotFound if the trip doesn't exist or the user is not a member.
// Returns apperrors.ErrForbidden if the user is a member but lacks the required role.
func (s *tripService) AuthorizeTripAction(ctx context.Context, userID, tripID string, requiredRole domain.TripRole) error {
	member, err := s.tripRepo.FindTripMember(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Authorization failed: trip not found or user not a member",
				slog.String("user_id", userID),
				slog.String("trip_id", tripID))
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to check trip membership",
			slog.String("user_id", userID),
			slog.String("trip_id", tripID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	// Declined invitations grant nothing
	if member.Status == domain.MemberDeclined {
		return apperrors.ErrNotFound
	}

	if member.Role == domain.RoleAdmin || member.Role == requiredRole {
		return nil
	}

	s.LogWarn(ctx, "Authorization failed: user lacks required role",
		slog.String("user_id", userID),
		slog.String("trip_id", tripID),
		slog.String("user_role", string(member.Role)),
		slog.String("required_role", string(requiredRole)))
	return apperrors.ErrForbidden
}

func validateTripDates(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end date %s is before start date %s", apperrors.ErrValidation,
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return nil
}

func validateBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", apperrors.ErrValidation)
	}
	return nil
}
