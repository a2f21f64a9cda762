package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"campaign-desk/internal/adapter/catalog"
	"campaign-desk/internal/adapter/ident"
	"campaign-desk/internal/adapter/memory"
	"campaign-desk/internal/adapter/security"
	"campaign-desk/internal/adapter/usecase"
	"campaign-desk/internal/core/domain"
)

type testServer struct {
	srv *httptest.Server
}

func newTestServer(t *testing.T, limiter *rate.Limiter) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cat, err := catalog.Default()
	require.NoError(t, err)
	copyUC, err := usecase.NewCopyUseCase(nil, 0, nil, logger)
	require.NoError(t, err)
	campaigns := usecase.NewCampaignUseCase(
		memory.NewCampaignRepository(ident.NewGenerator()),
		cat,
		copyUC,
		usecase.NewSynthesizer(usecase.DefaultAnalyticsModel(), nil),
		usecase.CampaignOptions{Logger: logger},
	)
	identity, err := security.NewStaticIdentity(
		domain.User{ID: "1", Email: "user@example.com", DisplayName: "Demo User"}, "password", 4)
	require.NoError(t, err)
	tokens, err := security.NewEphemeralJWTIssuer(time.Hour)
	require.NoError(t, err)

	h := NewHandler(Deps{
		Campaigns: campaigns,
		Copy:      copyUC,
		Auth:      usecase.NewAuthUseCase(identity, 0, nil, logger),
		Tokens:    tokens,
		Limiter:   limiter,
		Logger:    logger,
	})
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return &testServer{srv: srv}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.srv.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "user@example.com", "password": "password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[loginResponse](t, resp)
	require.NotEmpty(t, body.Token)
	assert.Equal(t, "Demo User", body.User.DisplayName)
	return body.Token
}

var draftBody = map[string]any{
	"name":      "Summer Sale",
	"age_range": "25-34",
	"location":  "Paris, France",
	"interests": []string{"Travel", "Food & Dining"},
}

func TestCampaignFlow(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.login(t)

	resp := s.do(t, http.MethodPost, "/api/v1/campaigns", token, draftBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Campaign](t, resp)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "/api/v1/campaigns/"+created.ID, resp.Header.Get("Location"))

	resp = s.do(t, http.MethodPatch, "/api/v1/campaigns/"+created.ID+"/status", token, map[string]string{"status": "Approved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/campaigns", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]domain.Campaign](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, domain.StatusApproved, list[0].Status)
	assert.Equal(t, []string{"Travel", "Food & Dining"}, list[0].Interests)

	resp = s.do(t, http.MethodGet, "/api/v1/campaigns/"+created.ID+"/analytics?days=7", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decode[domain.AnalyticsSnapshot](t, resp)
	assert.Len(t, snap.Series, 7)

	resp = s.do(t, http.MethodPost, "/api/v1/campaigns/"+created.ID+"/ad-copy", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	withCopy := decode[domain.Campaign](t, resp)
	require.NotNil(t, withCopy.AdCopy)
	assert.Equal(t, "Discover Summer Sale Today", withCopy.AdCopy.Headline)
}

func TestCreateCampaignWithGeneratedCopy(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.login(t)

	body := map[string]any{"generate_ad_copy": true}
	for k, v := range draftBody {
		body[k] = v
	}
	resp := s.do(t, http.MethodPost, "/api/v1/campaigns", token, body)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	c := decode[domain.Campaign](t, resp)
	require.NotNil(t, c.AdCopy)
	assert.Equal(t, "Summer Sale - Where Quality Meets Innovation", c.AdCopy.Tagline)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.login(t)

	t.Run("validation", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/campaigns", token, map[string]any{
			"name": "", "age_range": "25-34", "location": "Atlantis", "interests": []string{"Travel"},
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[errorResponse](t, resp)
		assert.Equal(t, "validation_failed", body.Code)
		require.Len(t, body.Fields, 2)
		assert.Equal(t, "name", body.Fields[0].Field)
		assert.Equal(t, "location", body.Fields[1].Field)
	})

	t.Run("invalid json", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/campaigns", token, map[string]any{"unknown": 1})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		resp := s.do(t, http.MethodGet, "/api/v1/campaigns/nope", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "not_found", decode[errorResponse](t, resp).Code)
	})

	t.Run("pending status target", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/campaigns", token, draftBody)
		c := decode[domain.Campaign](t, resp)

		resp = s.do(t, http.MethodPatch, "/api/v1/campaigns/"+c.ID+"/status", token, map[string]string{"status": "Pending"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("analytics days out of range", func(t *testing.T) {
		resp := s.do(t, http.MethodGet, "/api/v1/campaigns/any/analytics?days=91", token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[errorResponse](t, resp)
		require.Len(t, body.Fields, 1)
		assert.Equal(t, "days", body.Fields[0].Field)
	})

	t.Run("incomplete brief", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/ad-copy", token, map[string]any{"name": "Acme"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "incomplete_input", decode[errorResponse](t, resp).Code)
	})
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "user@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid_credentials", decode[errorResponse](t, resp).Code)

	resp = s.do(t, http.MethodGet, "/api/v1/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = s.do(t, http.MethodGet, "/api/v1/campaigns", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	first := s.login(t)
	resp = s.do(t, http.MethodGet, "/api/v1/auth/me", first, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user@example.com", decode[domain.User](t, resp).Email)

	second := s.login(t)
	resp = s.do(t, http.MethodGet, "/api/v1/campaigns", first, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "older session token")

	resp = s.do(t, http.MethodPost, "/api/v1/auth/logout", second, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = s.do(t, http.MethodGet, "/api/v1/campaigns", second, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublicEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/catalog", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cat := decode[domain.Catalog](t, resp)
	assert.Contains(t, cat.AgeRanges, "25-34")
	assert.Contains(t, cat.Interests, "Travel")
}

func TestGenerateAdCopyRateLimit(t *testing.T) {
	s := newTestServer(t, rate.NewLimiter(rate.Every(time.Minute), 1))
	token := s.login(t)
	brief := map[string]any{
		"name": "Acme", "age_range": "25-34", "location": "Paris, France", "interests": []string{"Travel"},
	}

	resp := s.do(t, http.MethodPost, "/api/v1/ad-copy", token, brief)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[domain.AdCopyResult](t, resp)
	assert.Equal(t, domain.AdCopySourceFallback, res.Source)
	assert.Equal(t, "Acme - Where Quality Meets Innovation", res.AdCopy.Tagline)

	resp = s.do(t, http.MethodPost, "/api/v1/ad-copy", token, brief)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(rate.Inf))
	assert.Equal(t, 1, retryAfterSeconds(rate.Limit(5)))
	assert.Equal(t, 3, retryAfterSeconds(rate.Every(3*time.Second)))
}
