// Package domain contains the core data types for the GlobeTrotter API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripScope classifies how far a trip ranges.
type TripScope string

const (
	ScopeDomestic      TripScope = "DOMESTIC"
	ScopeNational      TripScope = "NATIONAL"
	ScopeInternational TripScope = "INTERNATIONAL"
)

// Valid reports whether s is one of the known scope values.
func (s TripScope) Valid() bool {
	switch s {
	case ScopeDomestic, ScopeNational, ScopeInternational:
		return true
	}
	return false
}

// TripPersona classifies who is travelling.
type TripPersona string

const (
	PersonaSolo    TripPersona = "SOLO"
	PersonaCouple  TripPersona = "COUPLE"
	PersonaFamily  TripPersona = "FAMILY"
	PersonaFriends TripPersona = "FRIENDS"
)

// Valid reports whether p is one of the known persona values.
func (p TripPersona) Valid() bool {
	switch p {
	case PersonaSolo, PersonaCouple, PersonaFamily, PersonaFriends:
		return true
	}
	return false
}

// Trip is the top-level aggregate: it is owned by exactly one user and
// contains an ordered sequence of stops. The optional enum fields are empty
// strings when unset.
type Trip struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Description     string
	DepartureCity   string
	DestinationCity string
	Scope           TripScope   // optional
	Persona         TripPersona // optional
	StartDate       time.Time
	EndDate         time.Time
	Budget          *float64 // nil when no budget was set
	CoverImage      string
	IsPublic        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
