package port

import (
	"context"
	"time"

	"campaign-desk/internal/core/domain"
)

// AuthUseCase is the session gate in front of the dashboard.
type AuthUseCase interface {
	// Authenticate checks the credentials and, on success, replaces the
	// current session. A failed attempt leaves the current session as is.
	Authenticate(ctx context.Context, email, password string) (*domain.Session, error)
	// EndSession clears the current session.
	EndSession()
	// Current returns the active session, if any.
	Current() (*domain.Session, bool)
}

// IdentityProvider verifies credentials. It is the swappable seam behind the
// gate.
type IdentityProvider interface {
	Verify(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenIssuer signs and parses bearer tokens bound to a session.
type TokenIssuer interface {
	Issue(session domain.Session) (token string, expiresAt time.Time, err error)
	Parse(token string) (SessionClaims, error)
}

// SessionClaims is the verified content of a bearer token.
type SessionClaims struct {
	SessionID string
	UserID    string
	Email     string
	ExpiresAt time.Time
}
