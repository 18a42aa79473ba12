package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/globetrotter-app/backend/internal/domain"
	"github.com/globetrotter-app/backend/internal/repo"
)

// ItineraryService enforces the ownership chain (user → trip → stop →
// activity) on every mutation and assembles nested trip views with derived
// costs.
//
// Stops and activities carry no owner of their own: authorization always
// walks up to the root trip. The chain walk lives in exactly two resolver
// functions below, shared by every operation, so the existence-before-
// ownership order cannot drift between endpoints.
type ItineraryService struct {
	repos  repo.Repos  // pool-bound, for read assembly
	atomic repo.Atomic // transaction-scoped repos for mutations
}

// NewItineraryService constructs an ItineraryService. repos should be bound
// to the connection pool; atomic provides transactional repos so each
// ownership check and the write it guards execute as one unit.
func NewItineraryService(repos repo.Repos, atomic repo.Atomic) *ItineraryService {
	return &ItineraryService{repos: repos, atomic: atomic}
}

// --- ownership chain resolution ---------------------------------------------

// resolveStop looks up a stop and its parent trip. Resolution short-circuits
// at the first missing hop with domain.ErrNotFound.
func resolveStop(ctx context.Context, r repo.Repos, stopID uuid.UUID) (domain.Stop, domain.Trip, error) {
	stop, err := r.Stops.GetByID(ctx, stopID)
	if err != nil {
		return domain.Stop{}, domain.Trip{}, err
	}
	trip, err := r.Trips.GetByID(ctx, stop.TripID)
	if err != nil {
		return domain.Stop{}, domain.Trip{}, err
	}
	return stop, trip, nil
}

// resolveActivity looks up an activity, its parent stop, and the root trip.
// A dangling stop reference fails domain.ErrNotFound, same as a true absence.
func resolveActivity(ctx context.Context, r repo.Repos, activityID uuid.UUID) (domain.Activity, domain.Trip, error) {
	activity, err := r.Activities.GetByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, domain.Trip{}, err
	}
	_, trip, err := resolveStop(ctx, r, activity.StopID)
	if err != nil {
		return domain.Activity{}, domain.Trip{}, err
	}
	return activity, trip, nil
}

// requireOwner rejects any mutation by a non-owner. It runs only after the
// chain has fully resolved, so callers get 404 for missing resources and 403
// strictly once existence is confirmed.
func requireOwner(trip domain.Trip, actingUserID uuid.UUID) error {
	if trip.UserID != actingUserID {
		return domain.ErrForbidden
	}
	return nil
}

// --- stops ------------------------------------------------------------------

// AddStop appends a stop to a trip owned by the acting user.
// Returns domain.ErrNotFound if the trip is missing, domain.ErrForbidden if
// the acting user does not own it, domain.ErrValidation for bad input.
func (s *ItineraryService) AddStop(ctx context.Context, actingUserID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	if err := validateStop(stop); err != nil {
		return domain.Stop{}, err
	}

	var created domain.Stop
	err := s.atomic.InTx(ctx, func(r repo.Repos) error {
		trip, err := r.Trips.GetByID(ctx, stop.TripID)
		if err != nil {
			return err
		}
		if err := requireOwner(trip, actingUserID); err != nil {
			return err
		}
		created, err = r.Stops.Create(ctx, stop)
		return err
	})
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.ItineraryService.AddStop: %w", err)
	}
	return created, nil
}

// DeleteStop removes a stop and, by cascade, its activities.
// The stop's parent trip is resolved first: a missing stop or trip fails
// domain.ErrNotFound; a non-owner fails domain.ErrForbidden.
func (s *ItineraryService) DeleteStop(ctx context.Context, actingUserID, stopID uuid.UUID) error {
	err := s.atomic.InTx(ctx, func(r repo.Repos) error {
		_, trip, err := resolveStop(ctx, r, stopID)
		if err != nil {
			return err
		}
		if err := requireOwner(trip, actingUserID); err != nil {
			return err
		}
		return r.Stops.Delete(ctx, stopID)
	})
	if err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteStop: %w", err)
	}
	return nil
}

// --- activities -------------------------------------------------------------

// AddActivity attaches an activity to a stop on a trip owned by the acting
// user. Status is always forced to PLANNED regardless of caller input; a
// zero Cost stands for the documented default of 0.
func (s *ItineraryService) AddActivity(ctx context.Context, actingUserID uuid.UUID, activity domain.Activity) (domain.Activity, error) {
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}
	activity.Status = domain.StatusPlanned

	var created domain.Activity
	err := s.atomic.InTx(ctx, func(r repo.Repos) error {
		_, trip, err := resolveStop(ctx, r, activity.StopID)
		if err != nil {
			return err
		}
		if err := requireOwner(trip, actingUserID); err != nil {
			return err
		}
		created, err = r.Activities.Create(ctx, activity)
		return err
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	return created, nil
}

// DeleteActivity removes an activity after walking the full
// activity → stop → trip chain. Any missing hop fails domain.ErrNotFound;
// a non-owner fails domain.ErrForbidden.
func (s *ItineraryService) DeleteActivity(ctx context.Context, actingUserID, activityID uuid.UUID) error {
	err := s.atomic.InTx(ctx, func(r repo.Repos) error {
		_, trip, err := resolveActivity(ctx, r, activityID)
		if err != nil {
			return err
		}
		if err := requireOwner(trip, actingUserID); err != nil {
			return err
		}
		return r.Activities.Delete(ctx, activityID)
	})
	if err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteActivity: %w", err)
	}
	return nil
}

// --- read assembly ----------------------------------------------------------

// GetTripView assembles the full nested itinerary for one trip: stops in
// display order, each stop's activities by date, per-stop costs, and the
// trip total. The owner always may read; anyone else only when the trip is
// public. Mutation remains owner-only regardless of visibility.
//
// The view is computed fresh on every call — costs are never persisted, so
// a concurrent activity mutation is visible on the next read. Per-stop
// activity loads are independent and run concurrently; the view is returned
// only once all of them have completed.
func (s *ItineraryService) GetTripView(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.TripView, error) {
	trip, err := s.repos.Trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripView{}, fmt.Errorf("service.ItineraryService.GetTripView: %w", err)
	}
	if trip.UserID != actingUserID && !trip.IsPublic {
		return domain.TripView{}, fmt.Errorf("service.ItineraryService.GetTripView: %w", domain.ErrForbidden)
	}

	stops, err := s.repos.Stops.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TripView{}, fmt.Errorf("service.ItineraryService.GetTripView: %w", err)
	}

	view := domain.TripView{Trip: trip, Stops: make([]domain.StopView, len(stops))}

	g, gctx := errgroup.WithContext(ctx)
	for i, stop := range stops {
		i, stop := i, stop
		g.Go(func() error {
			activities, err := s.repos.Activities.ListByStop(gctx, stop.ID)
			if err != nil {
				return err
			}
			if activities == nil {
				activities = []domain.Activity{}
			}
			sv := domain.StopView{Stop: stop, Activities: activities}
			for _, a := range activities {
				sv.StopCost += a.Cost
			}
			view.Stops[i] = sv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.TripView{}, fmt.Errorf("service.ItineraryService.GetTripView: %w", err)
	}

	for _, sv := range view.Stops {
		view.TotalCost += sv.StopCost
	}
	return view, nil
}

// ExportTrip flattens a trip's itinerary into one row per activity for the
// CSV/JSON export endpoint. Authorization matches GetTripView: owner or
// public.
func (s *ItineraryService) ExportTrip(ctx context.Context, actingUserID, tripID uuid.UUID) ([]domain.ItineraryRow, error) {
	view, err := s.GetTripView(ctx, actingUserID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ExportTrip: %w", err)
	}

	const dateFormat = "2006-01-02"
	rows := []domain.ItineraryRow{}
	for _, sv := range view.Stops {
		base := domain.ItineraryRow{
			StopCity:      sv.City,
			StopCountry:   sv.Country,
			ArrivalDate:   sv.ArrivalDate.Format(dateFormat),
			DepartureDate: sv.DepartureDate.Format(dateFormat),
		}
		if len(sv.Activities) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, a := range sv.Activities {
			row := base
			row.ActivityName = a.Name
			row.Category = string(a.Category)
			row.Cost = a.Cost
			row.ActivityDate = a.Date.Format(dateFormat)
			row.Status = string(a.Status)
			row.Notes = a.Notes
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// --- validation -------------------------------------------------------------

// validateStop enforces business rules for AddStop.
//   - City and country must be non-empty.
//   - Accommodation tier, if set, must be a known value.
//
// OrderIndex is deliberately unconstrained: it is a sort hint controlled by
// the caller, not a sequence number.
func validateStop(stop domain.Stop) error {
	if strings.TrimSpace(stop.City) == "" {
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	if strings.TrimSpace(stop.Country) == "" {
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if stop.AccommodationTier != "" && !stop.AccommodationTier.Valid() {
		return fmt.Errorf("%w: unknown accommodation tier %q", domain.ErrValidation, stop.AccommodationTier)
	}
	return nil
}

// validateActivity enforces business rules for AddActivity.
func validateActivity(activity domain.Activity) error {
	if strings.TrimSpace(activity.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !activity.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, activity.Category)
	}
	if activity.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	return nil
}
