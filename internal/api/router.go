package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/theopenlane/mailmeter/internal/score"
)

// RouterConfig carries the dependencies and limits for the HTTP surface
type RouterConfig struct {
	// Auditor runs batch audits for the audit endpoint
	Auditor BatchAuditor
	// Thresholds controls segmentation of audit results
	Thresholds score.Thresholds
	// MaxBodySize caps audit request bodies in bytes
	MaxBodySize int64
	// RequestTimeout bounds a single audit request end to end. Batch
	// audits against slow domains need a generous value here.
	RequestTimeout time.Duration
}

// NewRouter creates a new chi router with all endpoints and middleware
func NewRouter(cfg RouterConfig) http.Handler {
	h := &Handler{
		auditor:     cfg.Auditor,
		thresholds:  cfg.Thresholds,
		maxBodySize: cfg.MaxBodySize,
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Compress(5))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.Heartbeat("/ping"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Post("/audit", h.handleAudit)
	})

	return r
}
