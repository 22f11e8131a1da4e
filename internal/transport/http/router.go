// Package httptransport is the thin HTTP layer. It delegates to domain
// services without embedding business logic so transport concerns remain
// isolated from the core.
package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"consentlens/internal/consent"
	"consentlens/internal/evaluation"
	"consentlens/internal/generation"
	"consentlens/internal/ledger"
	"consentlens/internal/platform/metrics"
	"consentlens/internal/platform/middleware"
	dErrors "consentlens/pkg/domain-errors"
)

//go:generate mockgen -destination=mocks/services.go -package=mocks consentlens/internal/transport/http ConsentService,EvaluationService

// ConsentService defines the consent operations the transport needs.
type ConsentService interface {
	Grant(ctx context.Context, userID string, category consent.DataCategory) (consent.Event, error)
	Revoke(ctx context.Context, userID string, category consent.DataCategory) (consent.Event, error)
	State(ctx context.Context, userID string) (consent.Snapshot, error)
	Timeline(ctx context.Context, userID string) ([]consent.Event, error)
}

// GenerationService defines the generation pipeline entrypoint.
type GenerationService interface {
	Run(ctx context.Context, userID, prompt string, snapshot consent.Snapshot) (generation.Request, generation.Response, error)
}

// LedgerService defines the request ledger operations the transport needs.
type LedgerService interface {
	Record(ctx context.Context, request generation.Request, response generation.Response) (ledger.Entry, error)
	Get(ctx context.Context, requestID string) (ledger.Entry, error)
	List(ctx context.Context, limit int) ([]ledger.Entry, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]ledger.Entry, error)
}

// EvaluationService defines the what-if entrypoint.
type EvaluationService interface {
	WhatIf(ctx context.Context, baseRequestID string, hypothetical consent.Snapshot) (evaluation.Result, error)
}

// Handler holds the wired services for all routes.
type Handler struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	consent    ConsentService
	generator  GenerationService
	ledger     LedgerService
	evaluation EvaluationService
}

// New creates the transport handler.
func New(
	logger *slog.Logger,
	m *metrics.Metrics,
	consentSvc ConsentService,
	generator GenerationService,
	ledgerSvc LedgerService,
	evaluationSvc EvaluationService,
) *Handler {
	return &Handler{
		logger:     logger,
		metrics:    m,
		consent:    consentSvc,
		generator:  generator,
		ledger:     ledgerSvc,
		evaluation: evaluationSvc,
	}
}

// NewRouter wires all public endpoints behind the standard middleware chain.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(h.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)

		r.Post("/consent/grant", h.handleGrantConsent)
		r.Post("/consent/revoke", h.handleRevokeConsent)
		r.Get("/consent/state/{userID}", h.handleConsentState)
		r.Get("/consent/timeline/{userID}", h.handleConsentTimeline)

		r.Post("/ai/run", h.handleRunGeneration)
		r.Post("/ai/what-if", h.handleWhatIf)
		r.Get("/ai/request/{requestID}", h.handleGetRequest)

		r.Get("/logs", h.handleListLogs)
		r.Get("/logs/user/{userID}", h.handleListUserLogs)
	})

	return r
}

// writeError centralizes domain error translation to HTTP responses, keeping
// a consistent JSON error envelope across handlers.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.GetCode(err)
	message := err.Error()
	var de *dErrors.Error
	if errors.As(err, &de) {
		message = de.Message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.ToHTTPStatus(code))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   string(code),
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
