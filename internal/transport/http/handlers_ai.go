package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"consentlens/internal/consent"
	"consentlens/internal/platform/middleware"
	dErrors "consentlens/pkg/domain-errors"
)

// RunRequest asks for one real generation under the user's live consent state.
type RunRequest struct {
	UserID string `json:"user_id"`
	Prompt string `json:"prompt"`
}

// WhatIfRequest asks for a counterfactual rerun of a ledgered request.
type WhatIfRequest struct {
	BaseRequestID   string            `json:"base_request_id"`
	ModifiedConsent map[string]string `json:"modified_consent"`
}

func (h *Handler) handleRunGeneration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.UserID == "" || req.Prompt == "" {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "user_id and prompt are required"))
		return
	}

	snapshot, err := h.consent.State(ctx, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	request, response, err := h.generator.Run(ctx, req.UserID, req.Prompt, snapshot)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.ledger.Record(ctx, request, response); err != nil {
		h.logger.ErrorContext(ctx, "failed to record ledger entry",
			"request_id", middleware.GetRequestID(ctx),
			"generation_request_id", request.RequestID,
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	h.metrics.GenerationsRun.Inc()
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleWhatIf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req WhatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.BaseRequestID == "" {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "base_request_id is required"))
		return
	}

	hypothetical, err := consent.ParseSnapshot(req.ModifiedConsent)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.evaluation.WhatIf(ctx, req.BaseRequestID, hypothetical)
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.WhatIfsRun.Inc()
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")
	entry, err := h.ledger.Get(r.Context(), requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
