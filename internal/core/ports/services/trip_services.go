package services

import (
	"context"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
)

// TripReaderSvc defines read operations for trip data
type TripReaderSvc interface {
	// GetTrip retrieves a trip. Only members can see it.
	GetTrip(ctx context.Context, tripID, requestingUserID string) (*domain.Trip, error)

	// ListUserTrips retrieves the trips a user is a member of.
	ListUserTrips(ctx context.Context, userID string) ([]domain.Trip, error)
}

// TripWriterSvc defines write operations for trip data
type TripWriterSvc interface {
	// CreateTrip creates a trip with the creator as its accepted admin.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, creator domain.TripMember) (*domain.Trip, error)

	// UpdateTrip applies a partial update. Admins only.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, requestingUserID string) (*domain.Trip, error)

	// DeleteTrip removes a trip and its expenses. Admins only.
	DeleteTrip(ctx context.Context, tripID, requestingUserID string) error
}

// TripMembershipSvc defines operations for managing trip membership
type TripMembershipSvc interface {
	// AddTripMember invites a user to a trip. Admins only.
	AddTripMember(ctx context.Context, tripID string, req dto.AddTripMemberRequest, requestingUserID string) (*domain.TripMember, error)

	// RemoveTripMember removes a user from a trip. Admins only; the last admin stays.
	RemoveTripMember(ctx context.Context, tripID, targetUserID, requestingUserID string) error

	// UpdateMemberRole changes a member's role. Admins only; the last admin stays.
	UpdateMemberRole(ctx context.Context, tripID, targetUserID string, role domain.TripRole, requestingUserID string) (*domain.TripMember, error)

	// RespondToInvitation accepts or declines the caller's own pending invitation.
	RespondToInvitation(ctx context.Context, tripID, userID string, accept bool) (*domain.TripMember, error)
}

// TripAuthorizerSvc defines operations for trip authorization
type TripAuthorizerSvc interface {
	// AuthorizeTripAction checks if a user has the required role in a trip.
	// Returns apperrors.ErrNotFound when the user is not a member and
	// apperrors.ErrForbidden when the member lacks the role.
	AuthorizeTripAction(ctx context.Context, userID, tripID string, requiredRole domain.TripRole) error
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
	TripMembershipSvc
	TripAuthorizerSvc
}
