package pgsql

import (
	"context"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/trip_ledger_app/internal/models"
	"github.com/SscSPs/trip_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityRepository struct {
	BaseRepository
}

// newPgxActivityRepository creates a new repository for itinerary data.
func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepositoryFacade {
	return &PgxActivityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxActivityRepository implements portsrepo.ActivityRepositoryFacade
var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

var FULL_ACTIVITY_SELECT_QUERY = `
SELECT
	a.activity_id, a.trip_id, a.title, a.description, a.activity_date, a.start_time, a.end_time,
	a.location, a.latitude, a.longitude, a.cost, a.category, a.position,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM activities a
`

func (r *PgxActivityRepository) getActivities(ctx context.Context, query string, args ...any) ([]domain.Activity, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query activities", err)
	}
	modelActivities, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Activity])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect activity rows", err)
	}
	return mapping.ToDomainActivities(modelActivities), nil
}

// FindActivityByID retrieves an activity of a trip.
func (r *PgxActivityRepository) FindActivityByID(ctx context.Context, tripID, activityID string) (*domain.Activity, error) {
	query := FULL_ACTIVITY_SELECT_QUERY + `WHERE a.trip_id = $1 AND a.activity_id = $2;`
	activities, err := r.getActivities(ctx, query, tripID, activityID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, apperrors.NewNotFoundError("activity " + activityID + " not found in trip " + tripID)
	}
	return &activities[0], nil
}

// ListActivitiesByTrip retrieves the itinerary of a trip, earliest day first.
func (r *PgxActivityRepository) ListActivitiesByTrip(ctx context.Context, tripID string) ([]domain.Activity, error) {
	query := FULL_ACTIVITY_SELECT_QUERY + `
		WHERE a.trip_id = $1
		ORDER BY a.activity_date, a.position, a.created_at, a.activity_id;
	`
	return r.getActivities(ctx, query, tripID)
}

// SaveActivity inserts a new activity.
func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	m := mapping.ToModelActivity(activity)

	query := `
		INSERT INTO activities (
			activity_id, trip_id, title, description, activity_date, start_time, end_time,
			location, latitude, longitude, cost, category, position,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ActivityID, m.TripID, m.Title, m.Description, m.ActivityDate, m.StartTime, m.EndTime,
		m.Location, m.Latitude, m.Longitude, m.Cost, m.Category, m.Position,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("activity ID " + m.ActivityID + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("trip " + m.TripID + " not found")
		case pgCheckViolation:
			return apperrors.NewValidationFailedError("activity " + m.ActivityID + " violates a table constraint")
		}
		return apperrors.NewAppError(500, "failed to insert activity "+m.ActivityID, err)
	}
	return nil
}

// UpdateActivity updates the mutable fields of an activity.
func (r *PgxActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	m := mapping.ToModelActivity(activity)

	query := `
		UPDATE activities
		SET title = $3, description = $4, activity_date = $5, start_time = $6, end_time = $7,
		    location = $8, latitude = $9, longitude = $10, cost = $11, category = $12, position = $13,
		    last_updated_at = $14, last_updated_by = $15
		WHERE trip_id = $1 AND activity_id = $2;
	`
	result, err := r.Pool.Exec(ctx, query,
		m.TripID, m.ActivityID, m.Title, m.Description, m.ActivityDate, m.StartTime, m.EndTime,
		m.Location, m.Latitude, m.Longitude, m.Cost, m.Category, m.Position,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return apperrors.NewValidationFailedError("activity " + m.ActivityID + " violates a table constraint")
		}
		return apperrors.NewAppError(500, "failed to update activity "+m.ActivityID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("activity " + m.ActivityID + " not found in trip " + m.TripID)
	}
	return nil
}

// DeleteActivity removes an activity.
func (r *PgxActivityRepository) DeleteActivity(ctx context.Context, tripID, activityID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM activities WHERE trip_id = $1 AND activity_id = $2;`, tripID, activityID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete activity "+activityID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("activity " + activityID + " not found in trip " + tripID)
	}
	return nil
}
