package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter-app/backend/internal/domain"
)

func TestAddStop_Created(t *testing.T) {
	owner := uuid.New()
	tripID := uuid.New()

	h := newHTTPHandler(owner, serverDeps{
		itinerary: &mockItineraryServicer{
			addStop: func(_ context.Context, actingUserID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
				assert.Equal(t, owner, actingUserID)
				assert.Equal(t, tripID, stop.TripID, "trip ID comes from the path")
				assert.Equal(t, 2, stop.OrderIndex)
				stop.ID = uuid.New()
				return stop, nil
			},
		},
	})

	body := jsonBody(t, map[string]any{
		"city":          "Kyoto",
		"country":       "Japan",
		"arrivalDate":   "2026-04-02",
		"departureDate": "2026-04-05",
		"orderIndex":    2,
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/stops", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"city":"Kyoto"`)
	assert.Contains(t, rec.Body.String(), `"orderIndex":2`)
}

func TestAddStop_TripNotFound_404(t *testing.T) {
	h := newHTTPHandler(uuid.New(), serverDeps{
		itinerary: &mockItineraryServicer{
			addStop: func(_ context.Context, _ uuid.UUID, _ domain.Stop) (domain.Stop, error) {
				return domain.Stop{}, domain.ErrNotFound
			},
		},
	})

	body := jsonBody(t, map[string]any{
		"city": "Kyoto", "country": "Japan",
		"arrivalDate": "2026-04-02", "departureDate": "2026-04-05",
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/stops", body))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddStop_NotOwner_403(t *testing.T) {
	h := newHTTPHandler(uuid.New(), serverDeps{
		itinerary: &mockItineraryServicer{
			addStop: func(_ context.Context, _ uuid.UUID, _ domain.Stop) (domain.Stop, error) {
				return domain.Stop{}, domain.ErrForbidden
			},
		},
	})

	body := jsonBody(t, map[string]any{
		"city": "Kyoto", "country": "Japan",
		"arrivalDate": "2026-04-02", "departureDate": "2026-04-05",
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/stops", body))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteStop_NoContent(t *testing.T) {
	owner := uuid.New()
	stopID := uuid.New()

	h := newHTTPHandler(owner, serverDeps{
		itinerary: &mockItineraryServicer{
			deleteStop: func(_ context.Context, actingUserID, id uuid.UUID) error {
				assert.Equal(t, stopID, id)
				return nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/stops/"+stopID.String(), nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAddActivity_Created_StatusPlanned(t *testing.T) {
	owner := uuid.New()
	stopID := uuid.New()

	h := newHTTPHandler(owner, serverDeps{
		itinerary: &mockItineraryServicer{
			addActivity: func(_ context.Context, actingUserID uuid.UUID, a domain.Activity) (domain.Activity, error) {
				assert.Equal(t, stopID, a.StopID, "stop ID comes from the path")
				assert.Equal(t, 45.5, a.Cost)
				a.ID = uuid.New()
				a.Status = domain.StatusPlanned
				return a, nil
			},
		},
	})

	body := jsonBody(t, map[string]any{
		"name":     "Sushi course",
		"category": "FOOD",
		"cost":     45.5,
		"date":     "2026-04-03",
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stops/"+stopID.String()+"/activities", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PLANNED"`)
	assert.Contains(t, rec.Body.String(), `"cost":45.5`)
}

func TestAddActivity_OmittedCostDefaultsToZero(t *testing.T) {
	owner := uuid.New()

	var got domain.Activity
	h := newHTTPHandler(owner, serverDeps{
		itinerary: &mockItineraryServicer{
			addActivity: func(_ context.Context, _ uuid.UUID, a domain.Activity) (domain.Activity, error) {
				got = a
				return a, nil
			},
		},
	})

	body := jsonBody(t, map[string]any{
		"name":     "Beach walk",
		"category": "RELAX",
		"date":     "2026-04-03",
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stops/"+uuid.NewString()+"/activities", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Zero(t, got.Cost)
}

func TestDeleteActivity_NotFound_404(t *testing.T) {
	h := newHTTPHandler(uuid.New(), serverDeps{
		itinerary: &mockItineraryServicer{
			deleteActivity: func(_ context.Context, _, _ uuid.UUID) error {
				return domain.ErrNotFound
			},
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/activities/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteActivity_NoContent(t *testing.T) {
	activityID := uuid.New()

	h := newHTTPHandler(uuid.New(), serverDeps{
		itinerary: &mockItineraryServicer{
			deleteActivity: func(_ context.Context, _, id uuid.UUID) error {
				assert.Equal(t, activityID, id)
				return nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/activities/"+activityID.String(), nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

// A protected route reached without a user in context answers 401. This
// covers the wiring mistake of mounting a route outside RequireAuth.
func TestProtectedRoutes_NoUser_401(t *testing.T) {
	h := newUnauthenticatedHandler(serverDeps{itinerary: &mockItineraryServicer{}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/stops/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
