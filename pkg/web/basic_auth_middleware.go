package web

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuthMiddleware protects the observation endpoints with basic
// authentication. Credentials are compared in constant time, and rejected
// requests receive a challenge so browser clients can prompt.
func BasicAuthMiddleware(username, password string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()

			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(username))
			passOK := subtle.ConstantTimeCompare([]byte(p), []byte(password))

			if !ok || userOK&passOK != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="observations"`)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
