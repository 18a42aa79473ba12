package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityCategory classifies what kind of activity this is.
type ActivityCategory string

const (
	CategorySightseeing ActivityCategory = "SIGHTSEEING"
	CategoryFood        ActivityCategory = "FOOD"
	CategoryAdventure   ActivityCategory = "ADVENTURE"
	CategoryRelax       ActivityCategory = "RELAX"
	CategoryOther       ActivityCategory = "OTHER"
)

// Valid reports whether c is one of the known category values.
func (c ActivityCategory) Valid() bool {
	switch c {
	case CategorySightseeing, CategoryFood, CategoryAdventure, CategoryRelax, CategoryOther:
		return true
	}
	return false
}

// ActivityStatus tracks the booking state of an activity.
// Every activity is created as PLANNED regardless of caller input; no
// operation in the API mutates status after creation.
type ActivityStatus string

const (
	StatusPlanned ActivityStatus = "PLANNED"
	StatusBooked  ActivityStatus = "BOOKED"
	StatusDone    ActivityStatus = "DONE"
)

// Valid reports whether s is one of the known status values.
func (s ActivityStatus) Valid() bool {
	return s == StatusPlanned || s == StatusBooked || s == StatusDone
}

// Activity is a single planned item attached to a stop.
type Activity struct {
	ID       uuid.UUID
	StopID   uuid.UUID
	Name     string
	Category ActivityCategory
	Cost     float64 // non-negative; defaults to 0
	Date     time.Time
	Status   ActivityStatus
	Notes    string
}
