package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts every API endpoint on a fresh chi router. requireAuth wraps
// the routes that need a logged-in user; auth, search, health, and the spec
// document stay open.
func (s *Server) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Post("/auth/register", s.Register)
	r.Post("/auth/login", s.Login)

	r.Get("/search/cities", s.SearchCities)
	r.Get("/search/city-image", s.CityImage)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/trips", s.CreateTrip)
		r.Get("/trips", s.ListTrips)
		r.Get("/trips/{tripId}", s.GetTrip)
		r.Put("/trips/{tripId}", s.UpdateTrip)
		r.Delete("/trips/{tripId}", s.DeleteTrip)
		r.Get("/trips/{tripId}/export", s.ExportTrip)

		r.Post("/trips/{tripId}/stops", s.AddStop)
		r.Delete("/stops/{stopId}", s.DeleteStop)

		r.Post("/stops/{stopId}/activities", s.AddActivity)
		r.Delete("/activities/{activityId}", s.DeleteActivity)
	})

	return r
}
