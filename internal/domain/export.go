package domain

// ItineraryRow is a single row in a trip's flat itinerary export.
// It is a denormalized view: one row per activity, with stop fields repeated
// for every activity at that stop. Stops with no activities yield one row
// with zero values for all activity fields.
type ItineraryRow struct {
	// Stop fields — repeated for every activity at the stop.
	StopCity      string
	StopCountry   string
	ArrivalDate   string // "2006-01-02" formatted date
	DepartureDate string

	// Activity fields — zero values when the stop has no activities.
	ActivityName string
	Category     string
	Cost         float64
	ActivityDate string // "2006-01-02" formatted date, empty when no activity
	Status       string
	Notes        string
}
