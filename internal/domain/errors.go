package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource — or any ancestor in its ownership chain — does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown enum value, negative
// cost). Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated is returned when no valid session credential was
// presented. Handlers should map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the acting user is authenticated and the
// target chain resolves, but the user does not own the root trip (and, for
// reads, the trip is not public). Handlers should map this to HTTP 403.
//
// Chain resolution always checks existence before ownership, so a caller
// never learns from a 403 whether somebody else's resource exists.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned on a duplicate unique key, e.g. registering an
// email address that is already taken. Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
