package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{
		"status":  "healthy",
		"service": "flight-route-service",
	}
	writeJSON(w, r, http.StatusOK, res)
}
