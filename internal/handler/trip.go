package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/globetrotter-app/backend/internal/domain"
)

// tripRequest is the wire shape shared by POST /trips and PUT /trips/{tripId}.
// Optional fields are pointers so absence survives decoding.
type tripRequest struct {
	Title           string             `json:"title"`
	Description     *string            `json:"description"`
	DepartureCity   *string            `json:"departureCity"`
	DestinationCity *string            `json:"destinationCity"`
	Scope           *string            `json:"scope"`
	Persona         *string            `json:"persona"`
	StartDate       openapi_types.Date `json:"startDate"`
	EndDate         openapi_types.Date `json:"endDate"`
	Budget          *float64           `json:"budget"`
	CoverImage      *string            `json:"coverImage"`
	IsPublic        *bool              `json:"isPublic"`
}

type tripResponse struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"userId"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	DepartureCity   string             `json:"departureCity,omitempty"`
	DestinationCity string             `json:"destinationCity,omitempty"`
	Scope           string             `json:"scope,omitempty"`
	Persona         string             `json:"persona,omitempty"`
	StartDate       openapi_types.Date `json:"startDate"`
	EndDate         openapi_types.Date `json:"endDate"`
	Budget          *float64           `json:"budget"`
	CoverImage      string             `json:"coverImage,omitempty"`
	IsPublic        bool               `json:"isPublic"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type paginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type tripListResponse struct {
	Data       []tripResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// tripViewResponse is the fully assembled itinerary returned by
// GET /trips/{tripId}: the trip, its stops with nested activities, and the
// derived cost roll-ups.
type tripViewResponse struct {
	tripResponse
	Stops     []stopViewResponse `json:"stops"`
	TotalCost float64            `json:"totalCost"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req tripRequest
	if err := decode(r, &req); err != nil {
		writeValidation(w, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), userID, requestToTrip(req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.ListByUser(r.Context(), userID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data: data,
		Pagination: paginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripId}. It returns the full itinerary view,
// readable by the owner or, for public trips, any logged-in user.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeValidation(w, err.Error())
		return
	}

	view, err := s.itinerary.GetTripView(r.Context(), userID, tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewToResponse(view))
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeValidation(w, err.Error())
		return
	}

	var req tripRequest
	if err := decode(r, &req); err != nil {
		writeValidation(w, err.Error())
		return
	}

	trip := requestToTrip(req)
	trip.ID = tripID

	updated, err := s.trips.Update(r.Context(), userID, trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripId}. Stops and activities go with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeValidation(w, err.Error())
		return
	}

	if err := s.trips.Delete(r.Context(), userID, tripID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToTrip(req tripRequest) domain.Trip {
	t := domain.Trip{
		Title:     req.Title,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
		Budget:    req.Budget,
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.DepartureCity != nil {
		t.DepartureCity = *req.DepartureCity
	}
	if req.DestinationCity != nil {
		t.DestinationCity = *req.DestinationCity
	}
	if req.Scope != nil {
		t.Scope = domain.TripScope(*req.Scope)
	}
	if req.Persona != nil {
		t.Persona = domain.TripPersona(*req.Persona)
	}
	if req.CoverImage != nil {
		t.CoverImage = *req.CoverImage
	}
	if req.IsPublic != nil {
		t.IsPublic = *req.IsPublic
	}
	return t
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		Title:           t.Title,
		Description:     t.Description,
		DepartureCity:   t.DepartureCity,
		DestinationCity: t.DestinationCity,
		Scope:           string(t.Scope),
		Persona:         string(t.Persona),
		StartDate:       openapi_types.Date{Time: t.StartDate},
		EndDate:         openapi_types.Date{Time: t.EndDate},
		Budget:          t.Budget,
		CoverImage:      t.CoverImage,
		IsPublic:        t.IsPublic,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func viewToResponse(v domain.TripView) tripViewResponse {
	stops := make([]stopViewResponse, len(v.Stops))
	for i, sv := range v.Stops {
		stops[i] = stopViewToResponse(sv)
	}
	return tripViewResponse{
		tripResponse: tripToResponse(v.Trip),
		Stops:        stops,
		TotalCost:    v.TotalCost,
	}
}
