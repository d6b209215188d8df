package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/earnly/internal/jwt"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AdminAuthorizer resolves an email to an active admin.
type AdminAuthorizer interface {
	Authorize(ctx context.Context, email string) (*models.Admin, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores its claims in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

// AdminMiddleware admits only requests whose token email belongs to an active admin.
// It must run after AuthMiddleware.
func AdminMiddleware(admins AdminAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, ok := jwt.ClaimsFromContext(ctx)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if _, err := admins.Authorize(ctx, claims.Email); err != nil {
				if errors.Is(err, models.ErrForbidden) {
					logger.Log.Warnw("admin access denied", "email", claims.Email, "uri", r.RequestURI)
					w.WriteHeader(http.StatusForbidden)
					return
				}
				logger.Log.Errorw("admin authorization failed", "email", claims.Email, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
