package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/solifood/foodlink/internal/httpx"
)

type ctxKey string

const claimsCtxKey = ctxKey("claims")

// WithClaims stores verified token claims in the context.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// ClaimsFromContext extracts the verified claims attached by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(*Claims)
	return claims, ok
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth rejects requests without a valid, non-expired access token and
// attaches the claims to the request context.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			httpx.Message(w, http.StatusUnauthorized, "Authorization header required.")
			return
		}
		claims, err := m.ParseAccess(token)
		if err != nil {
			httpx.Message(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RolesRequired allows the request only if the token claims carry at least one
// of the given role ids. It must run after RequireAuth.
func RolesRequired(roleIDs ...uint) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
				return
			}
			for _, id := range roleIDs {
				if claims.HasRole(id) {
					next.ServeHTTP(w, r)
					return
				}
			}
			httpx.Message(w, http.StatusUnauthorized, "Unauthorized request.")
		})
	}
}
