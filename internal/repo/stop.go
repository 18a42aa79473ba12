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

// StopRepo defines the persistence operations for Stops.
//
// GetByID is deliberately unscoped: the itinerary service resolves a stop by
// ID alone, then walks stop.TripID up the chain to authorize — stops carry
// no owner of their own.
type StopRepo interface {
	// Create inserts a new stop and returns the persisted record.
	Create(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// GetByID retrieves a single stop by its UUID primary key.
	// Returns domain.ErrNotFound if no stop with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Stop, error)

	// ListByTrip returns all stops for a trip ordered by order_index
	// ascending, with arrival_date and id as tie-breakers.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)

	// Delete removes a stop by ID. Child activities are removed by the
	// schema's ON DELETE CASCADE.
	// Returns domain.ErrNotFound if the stop does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgStopRepo is the Postgres implementation of StopRepo.
type pgStopRepo struct {
	db db
}

// NewStopRepo constructs a StopRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStopRepo(db db) StopRepo {
	return &pgStopRepo{db: db}
}

const stopColumns = `
	id, trip_id, city, country, arrival_date, departure_date,
	order_index, accommodation_tier`

func (r *pgStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	const q = `
		INSERT INTO stops (
			trip_id, city, country, arrival_date, departure_date,
			order_index, accommodation_tier
		)
		VALUES (
			@trip_id, @city, @country, @arrival_date, @departure_date,
			@order_index, @accommodation_tier
		)
		RETURNING ` + stopColumns

	args := pgx.NamedArgs{
		"trip_id":            stop.TripID,
		"city":               stop.City,
		"country":            stop.Country,
		"arrival_date":       stop.ArrivalDate,
		"departure_date":     stop.DepartureDate,
		"order_index":        stop.OrderIndex,
		"accommodation_tier": string(stop.AccommodationTier),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanStop(row)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Stop, error) {
	const q = `SELECT ` + stopColumns + ` FROM stops WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanStop(row)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's stops in display order. order_index is a
// plain sort key — duplicates and gaps are allowed — so arrival_date and id
// break ties to keep the output deterministic.
func (r *pgStopRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	const q = `
		SELECT ` + stopColumns + `
		FROM stops
		WHERE trip_id = @trip_id
		ORDER BY order_index ASC, arrival_date ASC, id ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var stops []domain.Stop
	for rows.Next() {
		st, err := scanStop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StopRepo.ListByTrip: scan: %w", err)
		}
		stops = append(stops, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTrip: rows: %w", err)
	}

	return stops, nil
}

func (r *pgStopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM stops WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StopRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanStop maps a single database row into a domain.Stop.
func scanStop(s scanner) (domain.Stop, error) {
	var (
		st        domain.Stop
		id        pgtype.UUID
		tripID    pgtype.UUID
		arrival   pgtype.Date
		departure pgtype.Date
		tier      string
	)

	err := s.Scan(&id, &tripID, &st.City, &st.Country, &arrival, &departure, &st.OrderIndex, &tier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Stop{}, domain.ErrNotFound
		}
		return domain.Stop{}, err
	}

	st.ID = uuid.UUID(id.Bytes)
	st.TripID = uuid.UUID(tripID.Bytes)
	st.ArrivalDate = arrival.Time
	st.DepartureDate = departure.Time
	st.AccommodationTier = domain.AccommodationTier(tier)

	return st, nil
}
