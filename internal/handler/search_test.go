package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter-app/backend/internal/catalog"
)

func TestSearchCities_OK(t *testing.T) {
	h := newHTTPHandler(uuid.Nil, serverDeps{
		search: &mockSearchServicer{
			searchCities: func(query string) []catalog.City {
				assert.Equal(t, "par", query)
				return []catalog.City{
					{Name: "Paris", Country: "France", Popularity: 98, CostIndex: 8, Image: "paris.jpg"},
				}
			},
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/cities?q=par", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Paris"`)
	assert.Contains(t, rec.Body.String(), `"costIndex":8`)
}

func TestSearchCities_NoMatches_EmptyArray(t *testing.T) {
	h := newHTTPHandler(uuid.Nil, serverDeps{
		search: &mockSearchServicer{
			searchCities: func(string) []catalog.City { return []catalog.City{} },
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/cities?q=zzz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCityImage_Found(t *testing.T) {
	h := newHTTPHandler(uuid.Nil, serverDeps{
		search: &mockSearchServicer{
			cityImage: func(name string) (string, bool) {
				assert.Equal(t, "Tokyo", name)
				return "tokyo.jpg", true
			},
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/city-image?name=Tokyo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"image":"tokyo.jpg"}`, rec.Body.String())
}

func TestCityImage_Unknown_NullImage(t *testing.T) {
	h := newHTTPHandler(uuid.Nil, serverDeps{
		search: &mockSearchServicer{
			cityImage: func(string) (string, bool) { return "", false },
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/city-image?name=Atlantis", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"image":null}`, rec.Body.String())
}
