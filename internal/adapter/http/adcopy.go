package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-desk/internal/core/domain"
)

// handleGenerateAdCopy writes copy for an unsaved brief, as the campaign form
// does before submission. The response always carries usable copy; source
// tells whether it came from the provider or the fallback.
func (h *Handler) handleGenerateAdCopy(w http.ResponseWriter, r *http.Request) {
	var brief domain.CopyBrief
	if !decodeJSON(w, r, &brief) {
		return
	}
	res, err := h.copy.GenerateAdCopy(r.Context(), brief)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleRegenerateAdCopy(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.RegenerateAdCopy(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
