package middleware

import (
	"context"
	"net/http"

	"github.com/hirewire/jobboard/app/models"
	"github.com/hirewire/jobboard/app/services"
)

type ctxKey string

const ctxUser ctxKey = "user"

// RequireAuth creates middleware that gates protected routes. It validates
// the bearer token, confirms the subject still exists, and injects the
// resolved user into the request context. Rejections are terminal per
// request; nothing downstream sees an unauthenticated request.
func RequireAuth(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, appErr := auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if appErr != nil {
				http.Error(w, appErr.Message, appErr.Status)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext retrieves the user set by RequireAuth middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	val := ctx.Value(ctxUser)
	if u, ok := val.(*models.User); ok {
		return u, true
	}
	return nil, false
}
