package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

// AuthUseCase is the single process-wide session gate. A successful login
// replaces whatever session was active before.
type AuthUseCase struct {
	identity port.IdentityProvider
	delay    time.Duration
	metrics  port.Metrics
	logger   *slog.Logger

	sleep func(time.Duration)
	now   func() time.Time

	mu      sync.RWMutex
	current *domain.Session
}

// NewAuthUseCase creates the gate. delay simulates the latency of a remote
// identity check and is applied to every attempt.
func NewAuthUseCase(identity port.IdentityProvider, delay time.Duration, metrics port.Metrics, logger *slog.Logger) *AuthUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthUseCase{
		identity: identity,
		delay:    delay,
		metrics:  metrics,
		logger:   logger,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Authenticate verifies the credentials. On failure the current session is
// left untouched and domain.ErrInvalidCredentials is returned.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*domain.Session, error) {
	if u.delay > 0 {
		u.sleep(u.delay)
	}

	user, err := u.identity.Verify(ctx, email, password)
	if err != nil {
		u.metrics.LoginAttempt(false)
		u.logger.Warn("login rejected", slog.String("email", email))
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		User:      *user,
		StartedAt: u.now().UTC(),
	}

	u.mu.Lock()
	u.current = session
	u.mu.Unlock()

	u.metrics.LoginAttempt(true)
	u.logger.Info("session started", slog.String("user_id", user.ID), slog.String("session_id", session.ID))

	out := *session
	return &out, nil
}

// EndSession clears the active session. It is a no-op without one.
func (u *AuthUseCase) EndSession() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current != nil {
		u.logger.Info("session ended", slog.String("session_id", u.current.ID))
	}
	u.current = nil
}

func (u *AuthUseCase) Current() (*domain.Session, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.current == nil {
		return nil, false
	}
	out := *u.current
	return &out, true
}
