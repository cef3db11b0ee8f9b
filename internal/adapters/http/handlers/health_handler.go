package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ReadinessReport is the body of GET /health/ready.
type ReadinessReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler reports the checks in registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. A process that can answer is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready with 200 when every check passes and
// 503 naming the failures otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	out := ReadinessReport{Status: "ready", Checks: map[string]string{}}
	code := http.StatusOK
	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			out.Checks[name] = "ok"
			continue
		}
		out.Checks[name] = err.Error()
		out.Status, code = "not_ready", http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, out)
}
