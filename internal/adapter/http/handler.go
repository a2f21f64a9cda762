package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"campaign-desk/internal/core/port"
)

// maxBodyBytes bounds request bodies. Banner data URLs are the largest
// expected payload.
const maxBodyBytes = 8 << 20

// HTTPMetrics records served requests.
type HTTPMetrics interface {
	RecordHTTP(statusCode int, duration time.Duration)
}

// Deps are the collaborators of the HTTP adapter. Metrics, MetricsHandler
// and Limiter are optional.
type Deps struct {
	Campaigns port.CampaignUseCase
	Copy      port.CopyUseCase
	Auth      port.AuthUseCase
	Tokens    port.TokenIssuer

	Metrics        HTTPMetrics
	MetricsHandler http.Handler
	// Limiter throttles the ad copy generation endpoints.
	Limiter *rate.Limiter

	AllowedOrigins []string
	Logger         *slog.Logger
}

// Handler is the dashboard API. NewHandler builds it from Deps: the campaign,
// ad copy and auth usecases plus the token issuer serve the routes, while
// metrics, the limiter and CORS origins only shape the middleware stack.
type Handler struct {
	campaigns port.CampaignUseCase
	copy      port.CopyUseCase
	auth      port.AuthUseCase
	tokens    port.TokenIssuer
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		campaigns: d.Campaigns,
		copy:      d.Copy,
		auth:      d.Auth,
		tokens:    d.Tokens,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger, d.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.handleHealth)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.handleLogin)
		r.Get("/catalog", h.handleCatalog)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Post("/auth/logout", h.handleLogout)
			r.Get("/auth/me", h.handleMe)

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Patch("/campaigns/{id}/status", h.handleSetStatus)
			r.Get("/campaigns/{id}/analytics", h.handleAnalytics)

			r.Group(func(r chi.Router) {
				r.Use(rateLimit(d.Limiter, logger))
				r.Post("/campaigns/{id}/ad-copy", h.handleRegenerateAdCopy)
				r.Post("/ad-copy", h.handleGenerateAdCopy)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.campaigns.Catalog())
}
