package handler

import (
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/globetrotter-app/backend/internal/domain"
)

// activityRequest carries no status field on purpose: every new activity
// starts as PLANNED regardless of what the client sends.
type activityRequest struct {
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Cost     *float64           `json:"cost"`
	Date     openapi_types.Date `json:"date"`
	Notes    *string            `json:"notes"`
}

type activityResponse struct {
	ID       uuid.UUID          `json:"id"`
	StopID   uuid.UUID          `json:"stopId"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Cost     float64            `json:"cost"`
	Date     openapi_types.Date `json:"date"`
	Status   string             `json:"status"`
	Notes    string             `json:"notes,omitempty"`
}

// AddActivity handles POST /stops/{stopId}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
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

	var req activityRequest
	if err := decode(r, &req); err != nil {
		writeValidation(w, err.Error())
		return
	}

	created, err := s.itinerary.AddActivity(r.Context(), userID, requestToActivity(stopID, req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// DeleteActivity handles DELETE /activities/{activityId}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := actingUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	activityID, err := pathUUID(r, "activityId")
	if err != nil {
		writeValidation(w, err.Error())
		return
	}

	if err := s.itinerary.DeleteActivity(r.Context(), userID, activityID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToActivity(stopID uuid.UUID, req activityRequest) domain.Activity {
	a := domain.Activity{
		StopID:   stopID,
		Name:     req.Name,
		Category: domain.ActivityCategory(req.Category),
		Date:     req.Date.Time,
	}
	if req.Cost != nil {
		a.Cost = *req.Cost
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	return a
}

func activityToResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:       a.ID,
		StopID:   a.StopID,
		Name:     a.Name,
		Category: string(a.Category),
		Cost:     a.Cost,
		Date:     openapi_types.Date{Time: a.Date},
		Status:   string(a.Status),
		Notes:    a.Notes,
	}
}
