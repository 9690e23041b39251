// Package api provides the HTTP surface for the mailmeter audit service.
package api

import (
	"net/http"
	"time"

	"github.com/theopenlane/mailmeter/internal/score"
)

// Handler manages API endpoints
type Handler struct {
	auditor     BatchAuditor
	thresholds  score.Thresholds
	maxBodySize int64
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// handleHealth returns service health status
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "mailmeter",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
