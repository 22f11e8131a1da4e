package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"consentlens/internal/ledger"
	dErrors "consentlens/pkg/domain-errors"
)

// parseLimit reads the limit query parameter. Absent means the default;
// present-but-unparseable is a bad request. Range validation (limit > 0) is
// the ledger service's job.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return ledger.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")
	}
	return limit, nil
}

func (h *Handler) handleListLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := h.ledger.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleListUserLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, err)
		return
	}
	userID := chi.URLParam(r, "userID")
	entries, err := h.ledger.ListForUser(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
