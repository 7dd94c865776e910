package http

import (
	"context"
	"net/http"
	"strings"

	"equiptrack-backend/internal/security"
)

type contextKey string

const adminClaimsKey contextKey = "adminClaims"

// AuthMiddleware validates the bearer token on admin routes and stashes the
// claims in the request context.
func AuthMiddleware(tokenManager security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokenManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// adminIDFrom returns the authenticated admin's ID, or 0 when the request did
// not pass through AuthMiddleware.
func adminIDFrom(r *http.Request) int32 {
	claims, ok := r.Context().Value(adminClaimsKey).(*security.AdminClaims)
	if !ok {
		return 0
	}
	return claims.AdminID
}
