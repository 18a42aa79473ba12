package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccommodationTier is the optional lodging preference for a stop.
type AccommodationTier string

const (
	TierAffordable AccommodationTier = "AFFORDABLE"
	TierLuxury     AccommodationTier = "LUXURY"
)

// Valid reports whether t is one of the known tier values.
func (t AccommodationTier) Valid() bool {
	return t == TierAffordable || t == TierLuxury
}

// Stop is a single city on a trip's itinerary.
//
// OrderIndex is a sort key only: values are not required to be unique or
// contiguous within a trip. Display order sorts by OrderIndex ascending,
// with arrival date and then ID as tie-breakers so output is deterministic.
type Stop struct {
	ID                uuid.UUID
	TripID            uuid.UUID
	City              string
	Country           string
	ArrivalDate       time.Time
	DepartureDate     time.Time
	OrderIndex        int
	AccommodationTier AccommodationTier // optional
}
