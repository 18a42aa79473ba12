package handler

import (
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/globetrotter-app/backend/internal/domain"
)

type stopRequest struct {
	City              string             `json:"city"`
	Country           string             `json:"country"`
	ArrivalDate       openapi_types.Date `json:"arrivalDate"`
	DepartureDate     openapi_types.Date `json:"departureDate"`
	OrderIndex        *int               `json:"orderIndex"`
	AccommodationTier *string            `json:"accommodationTier"`
}

type stopResponse struct {
	ID                uuid.UUID          `json:"id"`
	TripID            uuid.UUID          `json:"tripId"`
	City              string             `json:"city"`
	Country           string             `json:"country"`
	ArrivalDate       openapi_types.Date `json:"arrivalDate"`
	DepartureDate     openapi_types.Date `json:"departureDate"`
	OrderIndex        int                `json:"orderIndex"`
	AccommodationTier string             `json:"accommodationTier,omitempty"`
}

// stopViewResponse is a stop as it appears inside a trip view: the stop,
// its activities, and the per-stop cost roll-up.
type stopViewResponse struct {
	stopResponse
	Activities []activityResponse `json:"activities"`
	StopCost   float64            `json:"stopCost"`
}

// AddStop handles POST /trips/{tripId}/stops.
func (s *Server) AddStop(w http.ResponseWriter, r *http.Request) {
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

	var req stopRequest
	if err := decode(r, &req); err != nil {
		writeValidation(w, err.Error())
		return
	}

	created, err := s.itinerary.AddStop(r.Context(), userID, requestToStop(tripID, req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, stopToResponse(created))
}

// DeleteStop handles DELETE /stops/{stopId}. Activities go with it.
func (s *Server) DeleteStop(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	stopID, err := pathUUID(r, "stopId")
	if err != nil {
		writeValidation(w, err.Error())
		return
	}

	if err := s.itinerary.DeleteStop(r.Context(), userID, stopID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToStop(tripID uuid.UUID, req stopRequest) domain.Stop {
	st := domain.Stop{
		TripID:        tripID,
		City:          req.City,
		Country:       req.Country,
		ArrivalDate:   req.ArrivalDate.Time,
		DepartureDate: req.DepartureDate.Time,
	}
	if req.OrderIndex != nil {
		st.OrderIndex = *req.OrderIndex
	}
	if req.AccommodationTier != nil {
		st.AccommodationTier = domain.AccommodationTier(*req.AccommodationTier)
	}
	return st
}

func stopToResponse(st domain.Stop) stopResponse {
	return stopResponse{
		ID:                st.ID,
		TripID:            st.TripID,
		City:              st.City,
		Country:           st.Country,
		ArrivalDate:       openapi_types.Date{Time: st.ArrivalDate},
		DepartureDate:     openapi_types.Date{Time: st.DepartureDate},
		OrderIndex:        st.OrderIndex,
		AccommodationTier: string(st.AccommodationTier),
	}
}

func stopViewToResponse(sv domain.StopView) stopViewResponse {
	activities := make([]activityResponse, len(sv.Activities))
	for i, a := range sv.Activities {
		activities[i] = activityToResponse(a)
	}
	return stopViewResponse{
		stopResponse: stopToResponse(sv.Stop),
		Activities:   activities,
		StopCost:     sv.StopCost,
	}
}
