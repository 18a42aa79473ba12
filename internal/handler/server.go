// Package handler implements the HTTP handlers for the GlobeTrotter API.
// Handlers are methods on Server, split into domain-specific files (auth.go,
// trip.go, stop.go, ...) that all share the same struct. Handlers decode the
// wire format, resolve the acting user from the request context, call a
// service, and map domain errors onto HTTP statuses — nothing more.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/globetrotter-app/backend/internal/catalog"
	"github.com/globetrotter-app/backend/internal/domain"
)

// AuthServicer defines the identity operations the auth handlers depend on.
// Defining the interfaces here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type AuthServicer interface {
	Register(ctx context.Context, email, password, name string) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

// TripServicer defines the trip CRUD operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	ListByUser(ctx context.Context, actingUserID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, actingUserID, tripID uuid.UUID) error
}

// ItineraryServicer defines the itinerary operations: stop and activity
// mutations, the assembled trip view, and the flat export.
type ItineraryServicer interface {
	AddStop(ctx context.Context, actingUserID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	DeleteStop(ctx context.Context, actingUserID, stopID uuid.UUID) error
	AddActivity(ctx context.Context, actingUserID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, actingUserID, activityID uuid.UUID) error
	GetTripView(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.TripView, error)
	ExportTrip(ctx context.Context, actingUserID, tripID uuid.UUID) ([]domain.ItineraryRow, error)
}

// SearchServicer defines the city catalog lookups.
type SearchServicer interface {
	SearchCities(query string) []catalog.City
	CityImage(name string) (string, bool)
}

// Server holds the handler dependencies. Methods live in domain-specific
// files but all operate on this struct.
type Server struct {
	auth      AuthServicer
	trips     TripServicer
	itinerary ItineraryServicer
	search    SearchServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthServicer, trips TripServicer, itinerary ItineraryServicer, search SearchServicer) *Server {
	return &Server{auth: auth, trips: trips, itinerary: itinerary, search: search}
}
