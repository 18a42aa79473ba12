package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Users own trips; stops and activities carry
// no owner of their own and inherit ownership through their parent trip.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, never serialized
	CreatedAt    time.Time
}
