package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/libs/auth"
)

func signToken(t *testing.T, userID, secret string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token, err := auth.SignHS256(auth.Claims{
		UserID: userID,
		Iat:    now.Unix(),
		Exp:    now.Add(ttl).Unix(),
	}, secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	accounts := newFakeAccounts(model.Account{ID: "u1", Email: "jane@example.com"})
	protect := RequireAuth(testSecret, accounts)
	next := protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := map[string]struct {
		header string
		want   int
	}{
		"no header":       {"", http.StatusUnauthorized},
		"not bearer":      {"Basic abc", http.StatusUnauthorized},
		"empty bearer":    {"Bearer ", http.StatusUnauthorized},
		"garbage token":   {"Bearer not.a.token", http.StatusUnauthorized},
		"wrong secret":    {"Bearer " + signToken(t, "u1", "other-secret", time.Hour), http.StatusUnauthorized},
		"expired token":   {"Bearer " + signToken(t, "u1", testSecret, -time.Hour), http.StatusUnauthorized},
		"deleted account": {"Bearer " + signToken(t, "gone", testSecret, time.Hour), http.StatusUnauthorized},
		"valid":           {"Bearer " + signToken(t, "u1", testSecret, time.Hour), http.StatusOK},
	}
	for name, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		next.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", name, rec.Code, tc.want)
		}
	}
}
