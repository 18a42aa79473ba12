// Package service contains the business logic for the GlobeTrotter API.
// Services validate inputs, enforce ownership, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
//
// Every operation that acts on owned data takes the acting user ID as an
// explicit argument. Identity is resolved once, in the HTTP middleware, and
// passed down — services never read it from ambient request state.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/globetrotter-app/backend/internal/auth"
	"github.com/globetrotter-app/backend/internal/domain"
	"github.com/globetrotter-app/backend/internal/repo"
)

// TokenIssuer mints a session token for a user. Implemented by
// auth.TokenManager; defined here so AuthService tests can inject a stub.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// AuthService implements registration and login. It is the only code path
// that ever sees a plaintext password.
type AuthService struct {
	users  repo.UserRepo
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService backed by the provided repo and
// token issuer.
func NewAuthService(users repo.UserRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account and returns the stored user plus a fresh
// session token. Returns domain.ErrValidation for malformed input and
// domain.ErrConflict when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (domain.User, string, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, "", fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < 6 {
		return domain.User{}, "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	if len(strings.TrimSpace(name)) < 2 {
		return domain.User{}, "", fmt.Errorf("%w: name must be at least 2 characters", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	})
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a fresh session token.
// Unknown email and wrong password both return domain.ErrUnauthenticated so
// the response never reveals whether an email is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthenticated)
		}
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthenticated)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}
