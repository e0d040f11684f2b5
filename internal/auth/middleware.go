package auth

import (
	"context"
	"net/http"
)

// contextKey keeps request-context values type safe.
type contextKey string

var userIDContextKey = contextKey("user_id")

// UserMiddleware rejects requests without a valid session and redirects them
// to the login entry point. The authenticated user id is injected into the
// request context for downstream handlers.
func UserMiddleware(sm *SessionManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sm.CurrentUserID(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			ctx := ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the user id set by UserMiddleware.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDContextKey).(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

// ContextWithUserID injects a user id, used by the middleware and tests.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}
