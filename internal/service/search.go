package service

import (
	"strings"

	"github.com/globetrotter-app/backend/internal/catalog"
)

// SearchService answers city lookups from the static catalog. It is
// stateless and enforces no ownership — it only feeds autocomplete upstream
// of the itinerary engine.
type SearchService struct {
	cities []catalog.City
}

// NewSearchService constructs a SearchService over the given catalog.
// Pass catalog.Cities in production; tests can pass a smaller fixture.
func NewSearchService(cities []catalog.City) *SearchService {
	return &SearchService{cities: cities}
}

// maxCityResults caps a single search response.
const maxCityResults = 10

// SearchCities returns catalog entries whose name contains query,
// case-insensitively, capped at 10 results. An empty query returns an empty
// slice, never nil.
func (s *SearchService) SearchCities(query string) []catalog.City {
	results := []catalog.City{}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return results
	}

	for _, c := range s.cities {
		if strings.Contains(strings.ToLower(c.Name), query) {
			results = append(results, c)
			if len(results) == maxCityResults {
				break
			}
		}
	}
	return results
}

// CityImage returns the image reference for an exact, case-insensitive city
// name match. The second return is false when the city is not in the catalog.
func (s *SearchService) CityImage(name string) (string, bool) {
	for _, c := range s.cities {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c.Image, true
		}
	}
	return "", false
}
