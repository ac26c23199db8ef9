package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/mgeorge47/canteen-console-api/internal/session"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/authenticating"
	"github.com/mgeorge47/canteen-console-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeySession carries the resolved *session.Session
	ContextKeySession contextKey = "session"
)

// SessionFromContext returns the authenticated session, or nil outside the
// middleware.
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(ContextKeySession).(*session.Session)
	return sess
}

// SessionMiddleware resolves the console session token and rejects requests
// locally when none is present. No upstream call ever happens without a
// cached credential.
func SessionMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Bearer token is required", nil)
				return
			}

			sess, err := authService.Resolve(r.Context(), tokenString)
			if err != nil {
				if errors.Is(err, authenticating.ErrSessionNotFound) {
					apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Session expired, please log in again", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidSessionToken, "Invalid session token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
