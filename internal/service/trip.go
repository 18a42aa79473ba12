package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/globetrotter-app/backend/internal/domain"
	"github.com/globetrotter-app/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// Reads go straight to the pool-bound repo; owner-guarded mutations run
// their check-then-write pair inside a transaction via Atomic so a
// concurrent delete cannot interleave.
type TripService struct {
	trips  repo.TripRepo
	atomic repo.Atomic
}

// NewTripService constructs a TripService. trips should be bound to the
// connection pool; atomic provides transaction-scoped repos for mutations.
func NewTripService(trips repo.TripRepo, atomic repo.Atomic) *TripService {
	return &TripService{trips: trips, atomic: atomic}
}

// Create validates and persists a new trip owned by the acting user.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	trip.UserID = actingUserID

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// ListByUser returns one page of the acting user's own trips ordered by
// start date ascending, plus the total count. Always returns a non-nil
// slice so callers can safely range over it.
func (s *TripService) ListByUser(ctx context.Context, actingUserID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListByUser(ctx, actingUserID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListByUser: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and overwrites the mutable fields of a trip.
// Only the owner may update; existence is checked before ownership, so a
// caller can never learn from a 403 that somebody else's trip exists.
func (s *TripService) Update(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	var updated domain.Trip
	err := s.atomic.InTx(ctx, func(r repo.Repos) error {
		current, err := r.Trips.GetByID(ctx, trip.ID)
		if err != nil {
			return err
		}
		if current.UserID != actingUserID {
			return domain.ErrForbidden
		}
		trip.UserID = current.UserID
		updated, err = r.Trips.Update(ctx, trip)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip and, by cascade, all of its stops and activities.
// Only the owner may delete.
func (s *TripService) Delete(ctx context.Context, actingUserID, tripID uuid.UUID) error {
	err := s.atomic.InTx(ctx, func(r repo.Repos) error {
		trip, err := r.Trips.GetByID(ctx, tripID)
		if err != nil {
			return err
		}
		if trip.UserID != actingUserID {
			return domain.ErrForbidden
		}
		return r.Trips.Delete(ctx, tripID)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Budget, if set, must not be negative.
//   - Scope and persona, if set, must be known enum values.
//
// The start/end date ordering is deliberately not enforced: trips in the
// wild get their dates filled in out of order.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if trip.Budget != nil && *trip.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	if trip.Scope != "" && !trip.Scope.Valid() {
		return fmt.Errorf("%w: unknown scope %q", domain.ErrValidation, trip.Scope)
	}
	if trip.Persona != "" && !trip.Persona.Valid() {
		return fmt.Errorf("%w: unknown persona %q", domain.ErrValidation, trip.Persona)
	}
	return nil
}
