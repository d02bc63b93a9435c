package middleware

import (
	"bowling_backend/pkg/resp"
	"bowling_backend/pkg/token"
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

const bearerPrefix = "Bearer "

// WithBowlerID stores the authenticated bowler id in ctx.
func WithBowlerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// BowlerIDFromContext returns the id stored by Auth.
func BowlerIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ctxKey{}).(int)
	return id, ok
}

// Auth accepts requests carrying a valid "Authorization: Bearer <access token>" header.
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, bearerPrefix), secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			id, err := token.BowlerID(claims)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithBowlerID(r.Context(), id)))
		})
	}
}
