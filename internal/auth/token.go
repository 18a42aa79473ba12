package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/globetrotter-app/backend/internal/domain"
)

// TokenManager issues and verifies the opaque bearer tokens that carry a
// session. Tokens are HS256 JWTs with a single "userId" claim plus standard
// issued-at/expiry claims.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager signing with the given secret.
// ttl controls how long issued tokens remain valid.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given user.
func (m *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(m.ttl).Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.TokenManager.Issue: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the user ID it carries.
// Any failure — malformed token, wrong signature, expiry, missing or invalid
// userId claim — is reported as domain.ErrUnauthenticated so callers never
// have to distinguish the modes.
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("auth.TokenManager.Verify: %w", domain.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("auth.TokenManager.Verify: claims: %w", domain.ErrUnauthenticated)
	}

	raw, ok := claims["userId"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("auth.TokenManager.Verify: userId claim: %w", domain.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.TokenManager.Verify: userId claim: %w", domain.ErrUnauthenticated)
	}
	return userID, nil
}
