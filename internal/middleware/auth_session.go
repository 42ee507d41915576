package middleware

import (
	"context"
	"net/http"

	"wastenot/internal/session"
)

// SessionCookie is the name of the login-session cookie.
const SessionCookie = "wastenot_session"

type userIDKey struct{}

// RequireSession gates a route on a valid session cookie, placing the
// resolved user id in the request context.
func RequireSession(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			userID, ok := sessions.Get(cookie.Value)
			if !ok {
				http.Error(w, "session expired or invalid", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id, or 0 when the request
// carries no session.
func UserIDFromContext(ctx context.Context) int64 {
	if v, ok := ctx.Value(userIDKey{}).(int64); ok {
		return v
	}
	return 0
}
