package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"inkwell/internal/token"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// IdentityKey is the context key for the authenticated identity.
	IdentityKey contextKey = "identity"
)

// Authenticate validates the session token cookie and stores the decoded
// identity in the request context. Requests without a valid token are
// rejected with 401 — auth failures are terminal, no retry.
func Authenticate(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := tokens.Verify(r)
			if err != nil {
				if errors.Is(err, token.ErrMissingToken) {
					slog.Info("unauthenticated request",
						"method", r.Method,
						"path", r.URL.Path,
					)
				} else {
					slog.Warn("invalid session token",
						"method", r.Method,
						"path", r.URL.Path,
						"error", err,
					)
				}
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromCtx extracts the authenticated identity from the request
// context. Returns nil if the request is not authenticated.
func IdentityFromCtx(ctx context.Context) *token.Identity {
	identity, _ := ctx.Value(IdentityKey).(*token.Identity)
	return identity
}

// unauthorized writes the 401 JSON error body. Kept local so the
// middleware package does not depend on the handlers package.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"authentication required"}`))
}
