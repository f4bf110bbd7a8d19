package handler

import (
	"net/http"
)

const version = "0.1.0"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

// Health returns the health status of the service
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{"redis": "healthy"}
	status := "healthy"

	if err := h.rdb.HealthCheck(r.Context()); err != nil {
		services["redis"] = "unhealthy"
		status = "degraded"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:   status,
		Version:  version,
		Services: services,
	})
}

// Ready returns whether the service is ready to accept requests.
// Sessions live in Redis, so nothing can be gated without it.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.rdb.HealthCheck(r.Context()); err != nil {
		http.Error(w, "redis not ready", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
