package web

import (
	"encoding/json"
	"net/http"
)

// ObservationsIndex renders all retained observations, oldest first.
func ObservationsIndex(rs RateStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Encode will never fail with known data.
		_ = json.NewEncoder(w).Encode(rs.Observations())
	})
}

// ObservationsLatest renders the most recent observation.
func ObservationsLatest(rs RateStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o, err := rs.Latest()
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_ = json.NewEncoder(w).Encode(o)
	})
}
