package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

type MiddlewareProvider struct {
	tokenService primary.TokenService
}

func New(tokenService primary.TokenService) *MiddlewareProvider {
	return &MiddlewareProvider{
		tokenService: tokenService,
	}
}

// JWTMiddleware verifies the bearer token and puts the caller identity on
// the request context. Everything behind it can assume an authenticated
// caller.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		payload, err := m.tokenService.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), payload)))
	})
}

// WithIdentity returns a context carrying the caller identity
func WithIdentity(ctx context.Context, payload domain.AuthPayload) context.Context {
	return context.WithValue(ctx, identityKey, payload)
}

// IdentityFromContext extracts the caller identity set by JWTMiddleware
func IdentityFromContext(ctx context.Context) (domain.AuthPayload, bool) {
	payload, ok := ctx.Value(identityKey).(domain.AuthPayload)
	return payload, ok
}
