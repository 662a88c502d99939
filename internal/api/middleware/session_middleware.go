package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/triosart/storefront/internal/auth"
)

// RequireSession rejects requests made while the session is anonymous.
func RequireSession(session *auth.Session) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, authenticated := session.Current(); !authenticated {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "not authenticated",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
