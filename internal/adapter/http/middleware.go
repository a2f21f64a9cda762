package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"campaign-desk/internal/core/domain"
)

// statusRecorder wraps http.ResponseWriter and remembers the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// requestLogger logs one record per request, at warn for 4xx and error for
// 5xx, and feeds the HTTP metrics when present.
func requestLogger(logger *slog.Logger, metrics HTTPMetrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			if metrics != nil {
				metrics.RecordHTTP(rec.statusCode, duration)
			}

			level := slog.LevelInfo
			if rec.statusCode >= 500 {
				level = slog.LevelError
			} else if rec.statusCode >= 400 {
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http_request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.statusCode),
				slog.Float64("duration_ms", float64(duration.Microseconds())/1000),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

type sessionKey struct{}

func sessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return s, ok
}

// requireSession admits a request only when its bearer token is valid and
// bound to the gate's current session. Logging out or logging in again
// invalidates every older token.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			h.writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		claims, err := h.tokens.Parse(raw)
		if err != nil {
			h.writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		session, ok := h.auth.Current()
		if !ok || session.ID != claims.SessionID {
			h.writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// rateLimit rejects requests with 429 once the limiter is exhausted. A nil
// limiter lets everything through.
func rateLimit(limiter *rate.Limiter, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(limiter.Limit())))
				writeJSON(w, http.StatusTooManyRequests, errorResponse{
					Code:    "rate_limit_exceeded",
					Message: "too many ad copy requests, retry later",
				})
				logger.Warn("rate limit exceeded",
					slog.String("path", r.URL.Path),
					slog.String("limit", fmt.Sprintf("%.3f/s", float64(limiter.Limit()))),
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds is the time needed to refill one token.
func retryAfterSeconds(l rate.Limit) int {
	if l <= 0 || l == rate.Inf {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(l))))
}
