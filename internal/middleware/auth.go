package middleware

import (
	"context"
	"net/http"

	"github.com/nmehta/auth-sessions-api/internal/auth"
	"github.com/nmehta/auth-sessions-api/internal/models"
	"github.com/nmehta/auth-sessions-api/internal/web"
)

type contextKey int

const userKey contextKey = iota

// Restricted is the gate in front of protected routes: the request must
// carry a cookie that resolves to a live session, otherwise it is rejected
// with a 401. On success the session's user is injected into the request
// context.
func Restricted(sessions auth.SessionStore, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				web.Message(w, http.StatusUnauthorized, "you shall not pass")
				return
			}

			sess, err := sessions.Load(r.Context(), cookie.Value)
			if err != nil {
				web.ServerError(w, err, production)
				return
			}
			if sess == nil {
				web.Message(w, http.StatusUnauthorized, "you shall not pass")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, sess.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user injected by Restricted.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}
