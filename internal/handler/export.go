package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/globetrotter-app/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV
// export.
var csvHeaders = []string{
	"stop_city", "stop_country", "arrival_date", "departure_date",
	"activity_name", "category", "cost", "activity_date", "status", "notes",
}

type exportRow struct {
	StopCity      string  `json:"stopCity"`
	StopCountry   string  `json:"stopCountry"`
	ArrivalDate   string  `json:"arrivalDate"`
	DepartureDate string  `json:"departureDate"`
	ActivityName  string  `json:"activityName,omitempty"`
	Category      string  `json:"category,omitempty"`
	Cost          float64 `json:"cost"`
	ActivityDate  string  `json:"activityDate,omitempty"`
	Status        string  `json:"status,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// ExportTrip handles GET /trips/{tripId}/export. Visibility follows the trip
// view: owner always, anyone logged in when the trip is public.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
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

	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "json" {
		writeValidation(w, "format must be csv or json")
		return
	}

	rows, err := s.itinerary.ExportTrip(r.Context(), userID, tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	if format == "json" {
		writeJSONExport(w, rows)
		return
	}
	writeCSVExport(w, rows)
}

func writeJSONExport(w http.ResponseWriter, rows []domain.ItineraryRow) {
	out := make([]exportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRow{
			StopCity:      row.StopCity,
			StopCountry:   row.StopCountry,
			ArrivalDate:   row.ArrivalDate,
			DepartureDate: row.DepartureDate,
			ActivityName:  row.ActivityName,
			Category:      row.Category,
			Cost:          row.Cost,
			ActivityDate:  row.ActivityDate,
			Status:        row.Status,
			Notes:         row.Notes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeCSVExport(w http.ResponseWriter, rows []domain.ItineraryRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)

	cw := csv.NewWriter(w)

	//nolint:errcheck — the underlying writer surfaces failures on Flush.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(rowToCSVRecord(row))
	}
	cw.Flush()
}

func rowToCSVRecord(row domain.ItineraryRow) []string {
	return []string{
		row.StopCity,
		row.StopCountry,
		row.ArrivalDate,
		row.DepartureDate,
		row.ActivityName,
		row.Category,
		formatCost(row.Cost),
		row.ActivityDate,
		row.Status,
		row.Notes,
	}
}

// formatCost renders a cost with at most two decimal places and no trailing
// zeros, so "10" stays "10" and "12.50" becomes "12.5".
func formatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}
