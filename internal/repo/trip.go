package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/globetrotter-app/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListByUser returns the user's trips ordered by start_date ascending,
	// with the total count of the user's trips for pagination metadata.
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if the trip does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Child stops and their activities are
	// removed by the schema's ON DELETE CASCADE.
	// Returns domain.ErrNotFound if the trip does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `
	id, user_id, title, description, departure_city, destination_city,
	scope, persona, start_date, end_date, budget, cover_image, is_public,
	created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (
			user_id, title, description, departure_city, destination_city,
			scope, persona, start_date, end_date, budget, cover_image, is_public
		)
		VALUES (
			@user_id, @title, @description, @departure_city, @destination_city,
			@scope, @persona, @start_date, @end_date, @budget, @cover_image, @is_public
		)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByUser returns one page of the user's trips ordered by start_date
// ascending (soonest first), plus the user's total trip count.
func (r *pgTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = @user_id
		ORDER BY start_date ASC, id ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: rows: %w", err)
	}

	var total int64
	const countQ = `SELECT count(*) FROM trips WHERE user_id = @user_id`
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: count: %w", err)
	}

	return trips, total, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET title            = @title,
		    description      = @description,
		    departure_city   = @departure_city,
		    destination_city = @destination_city,
		    scope            = @scope,
		    persona          = @persona,
		    start_date       = @start_date,
		    end_date         = @end_date,
		    budget           = @budget,
		    cover_image      = @cover_image,
		    is_public        = @is_public,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := tripArgs(trip)
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs maps the mutable fields of a trip into pgx.NamedArgs.
// Empty-string enum fields are stored as empty strings, matching the
// NOT NULL DEFAULT '' columns; nil Budget becomes NULL.
func tripArgs(trip domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"user_id":          trip.UserID,
		"title":            trip.Title,
		"description":      trip.Description,
		"departure_city":   trip.DepartureCity,
		"destination_city": trip.DestinationCity,
		"scope":            string(trip.Scope),
		"persona":          string(trip.Persona),
		"start_date":       trip.StartDate,
		"end_date":         trip.EndDate,
		"budget":           trip.Budget, // nil becomes NULL
		"cover_image":      trip.CoverImage,
		"is_public":        trip.IsPublic,
	}
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, date, and nullable budget conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		userID    pgtype.UUID
		scope     string
		persona   string
		startDate pgtype.Date
		endDate   pgtype.Date
		budget    pgtype.Float8
	)

	err := s.Scan(
		&id, &userID, &t.Title, &t.Description, &t.DepartureCity,
		&t.DestinationCity, &scope, &persona, &startDate, &endDate,
		&budget, &t.CoverImage, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	t.Scope = domain.TripScope(scope)
	t.Persona = domain.TripPersona(persona)
	t.StartDate = startDate.Time
	t.EndDate = endDate.Time
	if budget.Valid {
		b := budget.Float64
		t.Budget = &b
	}

	return t, nil
}
