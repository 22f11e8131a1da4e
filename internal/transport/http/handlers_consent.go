package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"consentlens/internal/consent"
	"consentlens/internal/platform/middleware"
	dErrors "consentlens/pkg/domain-errors"
)

// ConsentChangeRequest is the body for grant and revoke calls.
type ConsentChangeRequest struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
}

// ConsentStateResponse reports the resolved snapshot for a user.
type ConsentStateResponse struct {
	UserID string           `json:"user_id"`
	State  consent.Snapshot `json:"state"`
}

func (h *Handler) handleGrantConsent(w http.ResponseWriter, r *http.Request) {
	h.handleConsentChange(w, r, consent.StatusGranted)
}

func (h *Handler) handleRevokeConsent(w http.ResponseWriter, r *http.Request) {
	h.handleConsentChange(w, r, consent.StatusRevoked)
}

func (h *Handler) handleConsentChange(w http.ResponseWriter, r *http.Request, action consent.Status) {
	ctx := r.Context()

	var req ConsentChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.UserID == "" {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "user_id is required"))
		return
	}

	category, err := consent.ParseDataCategory(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	var event consent.Event
	if action == consent.StatusGranted {
		event, err = h.consent.Grant(ctx, req.UserID, category)
	} else {
		event, err = h.consent.Revoke(ctx, req.UserID, category)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to append consent event",
			"request_id", middleware.GetRequestID(ctx),
			"action", string(action),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	h.metrics.IncrementConsentEvent(string(action))
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) handleConsentState(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	state, err := h.consent.State(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ConsentStateResponse{UserID: userID, State: state})
}

func (h *Handler) handleConsentTimeline(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	timeline, err := h.consent.Timeline(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, timeline)
}
