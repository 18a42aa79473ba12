package domain

// StopView is a stop plus its activities and the derived per-stop cost.
// StopCost is always the sum of the activity costs below it — it is computed
// at read time and never persisted.
type StopView struct {
	Stop
	Activities []Activity
	StopCost   float64
}

// TripView is the fully assembled itinerary for one trip: the trip record,
// its stops ordered by OrderIndex ascending, each stop's activities ordered
// by date ascending, and the derived cost roll-ups.
//
// A TripView is a projection assembled fresh on every read so that any
// concurrent mutation to a child activity is visible on the next call.
type TripView struct {
	Trip
	Stops     []StopView
	TotalCost float64
}
