package repositories

import (
	"context"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a trip together with its members.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTripsByUserID retrieves all trips a user is a member of, with members.
	ListTripsByUserID(ctx context.Context, userID string) ([]domain.Trip, error)
}

// TripWriter defines write operations for trip data
type TripWriter interface {
	// SaveTrip persists a new trip and its initial members atomically.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip updates the mutable fields of a trip.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip along with its members and expenses.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripMembershipManager defines operations for managing trip memberships
type TripMembershipManager interface {
	// AddTripMember adds a user to a trip. Returns apperrors.ErrDuplicate when already a member.
	AddTripMember(ctx context.Context, member domain.TripMember) error

	// FindTripMember retrieves the membership of a user in a trip.
	FindTripMember(ctx context.Context, tripID, userID string) (*domain.TripMember, error)

	// UpdateTripMember updates the role and status of an existing membership.
	UpdateTripMember(ctx context.Context, member domain.TripMember) error

	// RemoveTripMember deletes a membership.
	RemoveTripMember(ctx context.Context, tripID, userID string) error
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
	TripMembershipManager
}
