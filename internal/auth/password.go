// Package auth provides credential hashing and bearer token issuance for the
// GlobeTrotter API. The rest of the application only ever sees the UserID
// resolved from a verified token — credentials never leave this package and
// the handler that calls it.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is passed to bcrypt.GenerateFromPassword. 10 keeps login
// latency acceptable while remaining above bcrypt.MinCost.
const bcryptCost = 10

// HashPassword returns the bcrypt hash of the given plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
