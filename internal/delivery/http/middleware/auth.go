package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventhotelbooking/internal/delivery/http/helpers"
	"eventhotelbooking/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token, checks that
// a live session exists for it, and sets the user ID in the request context.
// A syntactically valid token with no session row is rejected: signing out
// (or a session purge) immediately invalidates the token. Failures respond
// 401 with an empty body and do not call next.
func RequireAuth(verifier domain.TokenVerifier, sessions domain.SessionRepository, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				helpers.WriteStatus(w, http.StatusUnauthorized)
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteStatus(w, http.StatusUnauthorized)
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteStatus(w, http.StatusUnauthorized)
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteStatus(w, http.StatusUnauthorized)
				return
			}
			if _, err := sessions.GetByToken(r.Context(), token); err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					logger.ErrorContext(r.Context(), "session lookup failed", "err", err)
				}
				helpers.WriteStatus(w, http.StatusUnauthorized)
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}
