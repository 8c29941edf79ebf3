package middlewares

import (
	"context"
	"net/http"

	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
)

// Tokener defines the minimal token-extraction interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves a token into the user it was issued to
type UserResolver interface {
	ResolveUser(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and puts
// the resolved user into the request context. Failures answer 401 with a
// Bearer challenge.
func AuthMiddleware(tokener Tokener, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Errorw("authorization failed", "err", err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolver.ResolveUser(ctx, tokenString)
			if err != nil {
				log.Errorw("authorization failed", "err", err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			log.Infow("request authenticated", "username", user.Username)

			next.ServeHTTP(w, r.WithContext(setUserToContext(ctx, user)))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// setUserToContext stores the authenticated user in the context
func setUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context. Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
