package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenVerifier resolves a bearer token to the user ID it was issued for.
// Implemented by auth.TokenManager; defined here (in the consumer package)
// so middleware tests can inject a stub.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// ctxKey is an unexported context key type so no other package can collide
// with values this package stores.
type ctxKey int

const userIDKey ctxKey = 0

// UserIDFromContext returns the acting user ID placed in the context by
// RequireAuth, and whether one was present.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithUserID returns a copy of ctx carrying the given user ID.
// Exported for handler tests that bypass the middleware.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// RequireAuth returns a middleware that rejects requests without a valid
// "Authorization: Bearer <token>" header. On success the resolved user ID is
// stored in the request context; handlers read it with UserIDFromContext and
// pass it explicitly into the service layer — services never touch the
// request context themselves.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				writeUnauthenticated(w, "missing bearer token")
				return
			}

			scheme, token, found := strings.Cut(raw, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				writeUnauthenticated(w, "malformed authorization header")
				return
			}

			userID, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				writeUnauthenticated(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// writeUnauthenticated writes a 401 response in the API's standard error
// envelope. Duplicated from the handler package to avoid an import cycle.
func writeUnauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthenticated", "message": message},
	})
}
