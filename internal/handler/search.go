package handler

import (
	"net/http"

	"github.com/globetrotter-app/backend/internal/catalog"
)

type cityResponse struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Popularity int    `json:"popularity"`
	CostIndex  int    `json:"costIndex"`
	Image      string `json:"image"`
}

type cityImageResponse struct {
	Image *string `json:"image"`
}

// SearchCities handles GET /search/cities?q=. An empty or missing query
// returns an empty list rather than an error.
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	cities := s.search.SearchCities(r.URL.Query().Get("q"))

	out := make([]cityResponse, 0, len(cities))
	for _, c := range cities {
		out = append(out, cityToResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// CityImage handles GET /search/city-image?name=. An unknown city returns
// {"image":null} with a 200 — absence of an image is not an error.
func (s *Server) CityImage(w http.ResponseWriter, r *http.Request) {
	img, ok := s.search.CityImage(r.URL.Query().Get("name"))

	resp := cityImageResponse{}
	if ok {
		resp.Image = &img
	}
	writeJSON(w, http.StatusOK, resp)
}

func cityToResponse(c catalog.City) cityResponse {
	return cityResponse{
		Name:       c.Name,
		Country:    c.Country,
		Popularity: c.Popularity,
		CostIndex:  c.CostIndex,
		Image:      c.Image,
	}
}
