package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/trip_ledger_app/internal/models"
	"github.com/SscSPs/trip_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTripRepository struct {
	BaseRepository
}

// newPgxTripRepository creates a new repository for trip and membership data.
func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepositoryFacade {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTripRepository implements portsrepo.TripRepositoryFacade
var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

var FULL_TRIP_SELECT_QUERY = `
SELECT
	t.trip_id, t.name, t.destination, t.start_date, t.end_date, t.budget, t.currency_code,
	t.description, t.cover_image, t.status,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM trips t
`

const tripMemberSelectQuery = `
SELECT trip_id, user_id, email, display_name, role, status, joined_at
FROM trip_members
`

const tripMemberInsertQuery = `
INSERT INTO trip_members (trip_id, user_id, email, display_name, role, status, joined_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// getTrips loads the trips matched by filterQuery together with their members.
func (r *PgxTripRepository) getTrips(ctx context.Context, filterQuery string, args ...any) ([]domain.Trip, error) {
	rows, err := r.Pool.Query(ctx, FULL_TRIP_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trips", err)
	}
	modelTrips, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trip])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect trip rows", err)
	}
	if len(modelTrips) == 0 {
		return []domain.Trip{}, nil
	}

	tripIDs := make([]string, len(modelTrips))
	for i, t := range modelTrips {
		tripIDs[i] = t.TripID
	}
	members, err := r.membersByTrip(ctx, tripIDs)
	if err != nil {
		return nil, err
	}

	trips := make([]domain.Trip, len(modelTrips))
	for i, t := range modelTrips {
		trips[i] = mapping.ToDomainTrip(t, members[t.TripID])
	}
	return trips, nil
}

// membersByTrip loads the members of several trips, in joining order.
func (r *PgxTripRepository) membersByTrip(ctx context.Context, tripIDs []string) (map[string][]models.TripMember, error) {
	query := tripMemberSelectQuery + `WHERE trip_id = ANY($1) ORDER BY joined_at, user_id;`
	rows, err := r.Pool.Query(ctx, query, tripIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trip members", err)
	}
	modelMembers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TripMember])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect trip member rows", err)
	}

	byTrip := make(map[string][]models.TripMember, len(tripIDs))
	for _, m := range modelMembers {
		byTrip[m.TripID] = append(byTrip[m.TripID], m)
	}
	return byTrip, nil
}

// FindTripByID retrieves a trip with its members.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	trips, err := r.getTrips(ctx, `WHERE t.trip_id = $1;`, tripID)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, apperrors.NewNotFoundError("trip " + tripID + " not found")
	}
	return &trips[0], nil
}

// ListTripsByUserID retrieves the trips a user belongs to, soonest first.
// Declined invitations are left out.
func (r *PgxTripRepository) ListTripsByUserID(ctx context.Context, userID string) ([]domain.Trip, error) {
	query := `
		JOIN trip_members tm ON tm.trip_id = t.trip_id
		WHERE tm.user_id = $1 AND tm.status != $2
		ORDER BY t.start_date, t.name;
	`
	return r.getTrips(ctx, query, userID, string(domain.MemberDeclined))
}

// SaveTrip inserts the trip and its initial members in one transaction.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO trips (
				trip_id, name, destination, start_date, end_date, budget, currency_code,
				description, cover_image, status,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
		`
		_, err := tx.Exec(ctx, query,
			m.TripID, m.Name, m.Destination, m.StartDate, m.EndDate, m.Budget, m.CurrencyCode,
			m.Description, m.CoverImage, m.Status,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return apperrors.NewConflictError("trip ID " + m.TripID + " already exists")
			}
			return apperrors.NewAppError(500, "failed to insert trip "+m.TripID, err)
		}

		batch := &pgx.Batch{}
		for _, member := range trip.Members {
			queueInsertMember(batch, mapping.ToModelTripMember(member))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert members of trip "+m.TripID, err)
		}
		return nil
	})
}

// UpdateTrip updates the editable columns of a trip.
func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
		UPDATE trips
		SET name = $2, destination = $3, start_date = $4, end_date = $5, budget = $6,
		    description = $7, cover_image = $8, status = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE trip_id = $1;
	`
	result, err := r.Pool.Exec(ctx, query,
		m.TripID, m.Name, m.Destination, m.StartDate, m.EndDate, m.Budget,
		m.Description, m.CoverImage, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return apperrors.NewValidationFailedError("trip " + m.TripID + " violates a constraint")
		}
		return apperrors.NewAppError(500, "failed to update trip "+m.TripID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip " + m.TripID + " not found")
	}
	return nil
}

// DeleteTrip removes a trip. Members, expenses and splits go with it through
// ON DELETE CASCADE.
func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete trip "+tripID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip " + tripID + " not found")
	}
	return nil
}

func queueInsertMember(batch *pgx.Batch, m models.TripMember) {
	batch.Queue(tripMemberInsertQuery, m.TripID, m.UserID, m.Email, m.DisplayName, m.Role, m.Status, m.JoinedAt)
}

// AddTripMember inserts a membership.
func (r *PgxTripRepository) AddTripMember(ctx context.Context, member domain.TripMember) error {
	m := mapping.ToModelTripMember(member)
	_, err := r.Pool.Exec(ctx, tripMemberInsertQuery, m.TripID, m.UserID, m.Email, m.DisplayName, m.Role, m.Status, m.JoinedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("user " + m.UserID + " is already a member of trip " + m.TripID)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("trip " + m.TripID + " not found")
		}
		return apperrors.NewAppError(500, "failed to add user "+m.UserID+" to trip "+m.TripID, err)
	}
	return nil
}

// FindTripMember retrieves one membership.
func (r *PgxTripRepository) FindTripMember(ctx context.Context, tripID, userID string) (*domain.TripMember, error) {
	rows, err := r.Pool.Query(ctx, tripMemberSelectQuery+`WHERE trip_id = $1 AND user_id = $2;`, tripID, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query membership of user "+userID+" in trip "+tripID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TripMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user " + userID + " is not a member of trip " + tripID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan membership of user "+userID+" in trip "+tripID, err)
	}
	member := mapping.ToDomainTripMember(m)
	return &member, nil
}

// UpdateTripMember updates the role and status of a membership.
func (r *PgxTripRepository) UpdateTripMember(ctx context.Context, member domain.TripMember) error {
	m := mapping.ToModelTripMember(member)
	result, err := r.Pool.Exec(ctx, `
		UPDATE trip_members
		SET role = $3, status = $4
		WHERE trip_id = $1 AND user_id = $2;
	`, m.TripID, m.UserID, m.Role, m.Status)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update membership of user "+m.UserID+" in trip "+m.TripID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + m.UserID + " is not a member of trip " + m.TripID)
	}
	return nil
}

// RemoveTripMember deletes a membership. Expenses keep the member's shares.
func (r *PgxTripRepository) RemoveTripMember(ctx context.Context, tripID, userID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM trip_members WHERE trip_id = $1 AND user_id = $2;`, tripID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove user "+userID+" from trip "+tripID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " is not a member of trip " + tripID)
	}
	return nil
}
