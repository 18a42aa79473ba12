package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter-app/backend/internal/catalog"
	"github.com/globetrotter-app/backend/internal/domain"
	"github.com/globetrotter-app/backend/internal/handler"
	"github.com/globetrotter-app/backend/internal/middleware"
)

// Test doubles for the servicer interfaces. Each method is a function
// field — set only the ones your test needs.

type mockAuthServicer struct {
	register func(ctx context.Context, email, password, name string) (domain.User, string, error)
	login    func(ctx context.Context, email, password string) (domain.User, string, error)
}

func (m *mockAuthServicer) Register(ctx context.Context, email, password, name string) (domain.User, string, error) {
	return m.register(ctx, email, password, name)
}
func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	return m.login(ctx, email, password)
}

type mockTripServicer struct {
	create     func(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	listByUser func(ctx context.Context, actingUserID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update     func(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	delete     func(ctx context.Context, actingUserID, tripID uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, actingUserID uuid.UUID, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, actingUserID, t)
}
func (m *mockTripServicer) ListByUser(ctx context.Context, actingUserID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listByUser(ctx, actingUserID, p)
}
func (m *mockTripServicer) Update(ctx context.Context, actingUserID uuid.UUID, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, actingUserID, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, actingUserID, tripID uuid.UUID) error {
	return m.delete(ctx, actingUserID, tripID)
}

type mockItineraryServicer struct {
	addStop        func(ctx context.Context, actingUserID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	deleteStop     func(ctx context.Context, actingUserID, stopID uuid.UUID) error
	addActivity    func(ctx context.Context, actingUserID uuid.UUID, activity domain.Activity) (domain.Activity, error)
	deleteActivity func(ctx context.Context, actingUserID, activityID uuid.UUID) error
	getTripView    func(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.TripView, error)
	exportTrip     func(ctx context.Context, actingUserID, tripID uuid.UUID) ([]domain.ItineraryRow, error)
}

func (m *mockItineraryServicer) AddStop(ctx context.Context, actingUserID uuid.UUID, st domain.Stop) (domain.Stop, error) {
	return m.addStop(ctx, actingUserID, st)
}
func (m *mockItineraryServicer) DeleteStop(ctx context.Context, actingUserID, stopID uuid.UUID) error {
	return m.deleteStop(ctx, actingUserID, stopID)
}
func (m *mockItineraryServicer) AddActivity(ctx context.Context, actingUserID uuid.UUID, a domain.Activity) (domain.Activity, error) {
	return m.addActivity(ctx, actingUserID, a)
}
func (m *mockItineraryServicer) DeleteActivity(ctx context.Context, actingUserID, activityID uuid.UUID) error {
	return m.deleteActivity(ctx, actingUserID, activityID)
}
func (m *mockItineraryServicer) GetTripView(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.TripView, error) {
	return m.getTripView(ctx, actingUserID, tripID)
}
func (m *mockItineraryServicer) ExportTrip(ctx context.Context, actingUserID, tripID uuid.UUID) ([]domain.ItineraryRow, error) {
	return m.exportTrip(ctx, actingUserID, tripID)
}

type mockSearchServicer struct {
	searchCities func(query string) []catalog.City
	cityImage    func(name string) (string, bool)
}

func (m *mockSearchServicer) SearchCities(query string) []catalog.City { return m.searchCities(query) }
func (m *mockSearchServicer) CityImage(name string) (string, bool)    { return m.cityImage(name) }

var (
	_ handler.AuthServicer      = (*mockAuthServicer)(nil)
	_ handler.TripServicer      = (*mockTripServicer)(nil)
	_ handler.ItineraryServicer = (*mockItineraryServicer)(nil)
	_ handler.SearchServicer    = (*mockSearchServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serverDeps bundles the four servicers so tests only fill in what they use.
type serverDeps struct {
	auth      handler.AuthServicer
	trips     handler.TripServicer
	itinerary handler.ItineraryServicer
	search    handler.SearchServicer
}

// newHTTPHandler mounts a Server on the real router with an auth middleware
// that injects userID — the same wiring main.go does, minus token parsing.
func newHTTPHandler(userID uuid.UUID, deps serverDeps) http.Handler {
	srv := handler.NewServer(deps.auth, deps.trips, deps.itinerary, deps.search)
	return srv.Routes(injectUser(userID))
}

// newUnauthenticatedHandler mounts the routes with a pass-through auth
// middleware that injects nothing, for exercising the 401 fallback.
func newUnauthenticatedHandler(deps serverDeps) http.Handler {
	srv := handler.NewServer(deps.auth, deps.trips, deps.itinerary, deps.search)
	return srv.Routes(func(next http.Handler) http.Handler { return next })
}

// injectUser stands in for middleware.RequireAuth.
func injectUser(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
		})
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeErrorCode pulls error.code out of an error envelope body.
func decodeErrorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope.Error.Code
}
