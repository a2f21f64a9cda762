package httpadapter

import (
	"net/http"
	"time"

	"campaign-desk/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string      `json:"token"`
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// handleLogin checks the credentials and returns a bearer token for the new
// session. Wrong credentials produce HTTP 401.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	token, expiresAt, err := h.tokens.Issue(*session)
	if err != nil {
		h.auth.EndSession()
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: session.User, ExpiresAt: expiresAt})
}

func (h *Handler) handleLogout(w http.ResponseWriter, _ *http.Request) {
	h.auth.EndSession()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		h.writeError(w, r, domain.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, session.User)
}
