package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/jwt"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth returns middleware that validates the bearer JWT and stores the
// caller's identity in the request context. Handlers read it once and pass
// it into domain operations as an explicit parameter.
func Auth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := jwtService.ValidateAccessToken(parts[1])
			if err != nil {
				if err == jwt.ErrExpiredToken {
					response.Unauthorized(w, "Token expired")
				} else {
					response.Unauthorized(w, "Invalid token")
				}
				return
			}

			identity := authz.Identity{UserID: claims.UserID, Role: claims.Role}
			ctx := context.WithValue(r.Context(), identityKey, identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the authenticated identity from context; the zero
// Identity means no caller is authenticated.
func GetIdentity(ctx context.Context) authz.Identity {
	if id, ok := ctx.Value(identityKey).(authz.Identity); ok {
		return id
	}
	return authz.Identity{}
}

// RequireAdmin returns middleware that requires the admin role
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !GetIdentity(r.Context()).IsAdmin() {
				response.NotAllowed(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
