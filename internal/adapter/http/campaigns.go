package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

// maxAnalyticsDays caps the analytics window.
const maxAnalyticsDays = 90

type createCampaignRequest struct {
	domain.CampaignDraft
	GenerateAdCopy bool `json:"generate_ad_copy"`
}

type setStatusRequest struct {
	Status domain.Status `json:"status"`
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// handleCreateCampaign validates and stores a draft. With generate_ad_copy
// set and no ad_copy supplied, copy is generated before the campaign is
// stored.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), req.CampaignDraft, port.CreateOptions{GenerateAdCopy: req.GenerateAdCopy})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+c.ID)
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.campaigns.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleAnalytics returns a fresh simulated snapshot. The optional days
// query parameter selects the window, 1 to 90 days.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxAnalyticsDays {
			h.writeError(w, r, domain.NewValidationError("days", "must be an integer between 1 and %d", maxAnalyticsDays))
			return
		}
		days = n
	}
	snap, err := h.campaigns.CampaignAnalytics(r.Context(), chi.URLParam(r, "id"), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
