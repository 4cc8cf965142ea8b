package repositories

import (
	"context"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
)

// ActivityReader defines read operations for itinerary data
type ActivityReader interface {
	// FindActivityByID retrieves an activity of a trip.
	FindActivityByID(ctx context.Context, tripID, activityID string) (*domain.Activity, error)

	// ListActivitiesByTrip retrieves the itinerary of a trip ordered by date, then order.
	ListActivitiesByTrip(ctx context.Context, tripID string) ([]domain.Activity, error)
}

// ActivityWriter defines write operations for itinerary data
type ActivityWriter interface {
	SaveActivity(ctx context.Context, activity domain.Activity) error
	UpdateActivity(ctx context.Context, activity domain.Activity) error
	DeleteActivity(ctx context.Context, tripID, activityID string) error
}

// ActivityRepositoryFacade combines all activity-related repository interfaces
type ActivityRepositoryFacade interface {
	ActivityReader
	ActivityWriter
}
