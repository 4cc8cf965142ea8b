package services

import (
	"context"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
)

// ActivityReaderSvc defines read operations for a trip's itinerary
type ActivityReaderSvc interface {
	// GetActivity retrieves an activity of a trip. Members only.
	GetActivity(ctx context.Context, tripID, activityID, requestingUserID string) (*domain.Activity, error)

	// ListActivities retrieves the itinerary ordered by date, then order.
	ListActivities(ctx context.Context, tripID, requestingUserID string) ([]domain.Activity, error)
}

// ActivityWriterSvc defines write operations for a trip's itinerary
type ActivityWriterSvc interface {
	// CreateActivity adds an itinerary entry. Members only.
	CreateActivity(ctx context.Context, tripID string, req dto.CreateActivityRequest, creatorUserID string) (*domain.Activity, error)

	// UpdateActivity applies a partial update. Its creator and trip admins may change it.
	UpdateActivity(ctx context.Context, tripID, activityID string, req dto.UpdateActivityRequest, requestingUserID string) (*domain.Activity, error)

	// DeleteActivity removes an entry. Its creator and trip admins may delete it.
	DeleteActivity(ctx context.Context, tripID, activityID, requestingUserID string) error
}

// ActivitySvcFacade combines all itinerary service interfaces
type ActivitySvcFacade interface {
	ActivityReaderSvc
	ActivityWriterSvc
}
