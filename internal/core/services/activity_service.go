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
)

var ErrActivityEndsBeforeStart = fmt.Errorf("%w: activity end time is before its start time", apperrors.ErrValidation)

// activityService keeps the itinerary of a trip.
type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
}

// NewActivityService creates a new ActivitySvcFacade.
func NewActivityService(activityRepo portsrepo.ActivityRepositoryFacade, tripAuthorizer portssvc.TripAuthorizerSvc) portssvc.ActivitySvcFacade {
	return &activityService{
		BaseService:  BaseService{TripAuthorizer: tripAuthorizer},
		activityRepo: activityRepo,
	}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// CreateActivity validates the request and appends the entry to its day
// unless an order is given.
func (s *activityService) CreateActivity(ctx context.Context, tripID string, req dto.CreateActivityRequest, creatorUserID string) (*domain.Activity, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: activity title is required", apperrors.ErrValidation)
	}
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown activity category %q", apperrors.ErrValidation, req.Category)
	}
	if err := validateClockRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.Cost != nil {
		if err := validateAmount("cost", *req.Cost); err != nil {
			return nil, err
		}
	}

	activity := domain.Activity{
		ActivityID:   uuid.NewString(),
		TripID:       tripID,
		Title:        title,
		Description:  req.Description,
		ActivityDate: req.ActivityDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Cost:         req.Cost,
		Category:     req.Category,
		AuditFields:  domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if req.Order != nil {
		activity.Order = *req.Order
	} else {
		existing, err := s.activityRepo.ListActivitiesByTrip(ctx, tripID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load itinerary",
				slog.String("trip_id", tripID))
			return nil, err
		}
		activity.Order = nextOrder(existing, req.ActivityDate)
	}

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		s.LogError(ctx, err, "Failed to save activity",
			slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.LogInfo(ctx, "Activity created successfully",
		slog.String("trip_id", tripID),
		slog.String("activity_id", activity.ActivityID),
		slog.String("created_by", creatorUserID))
	return &activity, nil
}

func (s *activityService) GetActivity(ctx context.Context, tripID, activityID, requestingUserID string) (*domain.Activity, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}
	return s.activityRepo.FindActivityByID(ctx, tripID, activityID)
}

func (s *activityService) ListActivities(ctx context.Context, tripID, requestingUserID string) ([]domain.Activity, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListActivitiesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activities",
			slog.String("trip_id", tripID))
		return nil, err
	}
	return activities, nil
}

// UpdateActivity applies the non-nil fields of req and stamps the entry.
func (s *activityService) UpdateActivity(ctx context.Context, tripID, activityID string, req dto.UpdateActivityRequest, requestingUserID string) (*domain.Activity, error) {
	activity, err := s.editableActivity(ctx, tripID, activityID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: activity title is required", apperrors.ErrValidation)
		}
		activity.Title = title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.ActivityDate != nil {
		activity.ActivityDate = *req.ActivityDate
	}
	if req.StartTime != nil {
		activity.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		activity.EndTime = *req.EndTime
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.Latitude != nil {
		activity.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		activity.Longitude = req.Longitude
	}
	if req.Cost != nil {
		if err := validateAmount("cost", *req.Cost); err != nil {
			return nil, err
		}
		activity.Cost = req.Cost
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, fmt.Errorf("%w: unknown activity category %q", apperrors.ErrValidation, *req.Category)
		}
		activity.Category = *req.Category
	}
	if req.Order != nil {
		activity.Order = *req.Order
	}
	if err := validateClockRange(activity.StartTime, activity.EndTime); err != nil {
		return nil, err
	}

	activity.Touch(requestingUserID, time.Now())

	if err := s.activityRepo.UpdateActivity(ctx, *activity); err != nil {
		s.LogError(ctx, err, "Failed to update activity",
			slog.String("trip_id", tripID),
			slog.String("activity_id", activityID))
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	s.LogInfo(ctx, "Activity updated successfully",
		slog.String("trip_id", tripID),
		slog.String("activity_id", activityID),
		slog.String("updated_by", requestingUserID))
	return activity, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, tripID, activityID, requestingUserID string) error {
	if _, err := s.editableActivity(ctx, tripID, activityID, requestingUserID); err != nil {
		return err
	}

	if err := s.activityRepo.DeleteActivity(ctx, tripID, activityID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete activity",
				slog.String("trip_id", tripID),
				slog.String("activity_id", activityID))
		}
		return err
	}

	s.LogInfo(ctx, "Activity deleted successfully",
		slog.String("trip_id", tripID),
		slog.String("activity_id", activityID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

// editableActivity loads an activity the user may change: their own, or any
// activity when they administer the trip.
func (s *activityService) editableActivity(ctx context.Context, tripID, activityID, userID string) (*domain.Activity, error) {
	if err := s.AuthorizeUser(ctx, userID, tripID, domain.RoleMember); err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.FindActivityByID(ctx, tripID, activityID)
	if err != nil {
		return nil, err
	}
	if activity.CreatedBy == userID {
		return activity, nil
	}

	if err := s.AuthorizeUser(ctx, userID, tripID, domain.RoleAdmin); err != nil {
		s.LogWarn(ctx, "User may not modify activity",
			slog.String("activity_id", activityID),
			slog.String("user_id", userID))
		return nil, apperrors.ErrForbidden
	}
	return activity, nil
}

// nextOrder places a new entry after the last one of the same day.
func nextOrder(activities []domain.Activity, day time.Time) int {
	next := 0
	for _, a := range activities {
		if sameDay(a.ActivityDate, day) && a.Order >= next {
			next = a.Order + 1
		}
	}
	return next
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// validateClockRange checks the HH:MM times of an activity. Either may be
// empty. When both are set the end must not precede the start.
func validateClockRange(start, end string) error {
	startAt, err := parseClock("start time", start)
	if err != nil {
		return err
	}
	endAt, err := parseClock("end time", end)
	if err != nil {
		return err
	}
	if start != "" && end != "" && endAt.Before(startAt) {
		return ErrActivityEndsBeforeStart
	}
	return nil
}

func parseClock(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.ClockLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must use HH:MM, got %q", apperrors.ErrValidation, field, value)
	}
	return t, nil
}
