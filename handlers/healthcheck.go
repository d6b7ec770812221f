package handlers

import (
	"net/http"
)

// HealthCheck confirms the service is up
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
