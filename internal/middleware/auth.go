package middleware

import (
	"context"
	"net/http"

	"github.com/rahul4112/portfolio-backend/internal/auth"
)

type contextKey string

// UsernameKey is the request-context key under which RequireAuth stores the
// authenticated admin's username.
const UsernameKey contextKey = "username"

// RequireAuth validates the session cookie against the store and injects the
// session's username into the request context. Requests without a live
// session get a 401 and never reach the wrapped handler.
func RequireAuth(sessions auth.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || sess == nil {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, sess.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Username extracts the authenticated username from a request context, or ""
// when the request did not pass through RequireAuth.
func Username(ctx context.Context) string {
	if v, ok := ctx.Value(UsernameKey).(string); ok {
		return v
	}
	return ""
}
