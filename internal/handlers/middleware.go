package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/md-rashed-zaman/bookinglite/internal/storage"
	"github.com/md-rashed-zaman/bookinglite/libs/auth"
)

type ctxKey int

const ctxKeyAccountID ctxKey = iota

func AccountIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyAccountID).(string)
	return v
}

// RequireAuth enforces bearer-token validation. It verifies the token
// signature and expiry, confirms the account still exists, and places the
// account id in the request context. Applied to every route except
// signup, signin, home and image retrieval.
func RequireAuth(secret string, accounts storage.AccountStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") || len(strings.TrimSpace(authHeader)) <= len("Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			claims, err := auth.ParseAndVerifyHS256(token, secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			if _, err := accounts.GetByID(r.Context(), claims.UserID); err != nil {
				if storage.IsNotFound(err) {
					writeError(w, http.StatusUnauthorized, "invalid token")
					return
				}
				writeError(w, http.StatusInternalServerError, "failed to lookup account")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAccountID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
