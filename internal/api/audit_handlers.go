package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/theopenlane/mailmeter/internal/score"
	"github.com/theopenlane/mailmeter/internal/types"
)

// maxBatchAddresses caps a single audit request. Larger lists belong in the
// CSV batch command, not a synchronous HTTP call.
const maxBatchAddresses = 1000

// BatchAuditor runs the audit pipeline over a list of raw addresses
type BatchAuditor interface {
	Run(ctx context.Context, emails []string) (types.Batch, error)
}

// AuditRequest represents a batch audit request
type AuditRequest struct {
	Emails []string `json:"emails"`
}

// AuditResponse represents the audit response
type AuditResponse struct {
	Success  bool            `json:"success"`
	Records  types.Batch     `json:"records,omitempty"`
	Segments *score.Segments `json:"segments,omitempty"`
	Summary  *score.Counts   `json:"summary,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// handleAudit runs the full audit pipeline over the submitted addresses and
// returns the scored records with their segmentation
func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var req AuditRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Emails) == 0 {
		respondWithError(w, ErrNoAddresses.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Emails) > maxBatchAddresses {
		respondWithError(w, ErrBatchTooLarge.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	batch, err := h.auditor.Run(r.Context(), req.Emails)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			respondWithError(w, "audit interrupted", http.StatusServiceUnavailable)
			return
		}

		respondWithError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	segments := score.Partition(batch, h.thresholds)
	counts := segments.Counts()

	writeJSON(w, http.StatusOK, AuditResponse{
		Success:  true,
		Records:  batch,
		Segments: &segments,
		Summary:  &counts,
	})
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, AuditResponse{
		Success: false,
		Error:   message,
	})
}
