package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

const (
	tokenIssuer     = "campaign-desk"
	DefaultTokenTTL = 12 * time.Hour
)

// JWTIssuer signs HS256 bearer tokens bound to a gate session.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer creates an issuer with a shared secret.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if len(secret) < 32 {
		return nil, errors.New("jwt secret must be at least 32 bytes")
	}
	return newJWTIssuer([]byte(secret), ttl), nil
}

// NewEphemeralJWTIssuer creates an issuer with a random in-memory secret.
// Tokens do not survive a restart, which matches the lifetime of the session
// they are bound to.
func NewEphemeralJWTIssuer(ttl time.Duration) (*JWTIssuer, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	return newJWTIssuer(secret, ttl), nil
}

func newJWTIssuer(secret []byte, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: secret, ttl: ttl, now: time.Now}
}

type sessionClaims struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func (j *JWTIssuer) Issue(session domain.Session) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SessionID: session.ID,
		Email:     session.User.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   session.User.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt.UTC().Truncate(time.Second), nil
}

// Parse verifies the signature, issuer and expiry of a token. Any failure is
// reported as domain.ErrUnauthenticated.
func (j *JWTIssuer) Parse(raw string) (port.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return port.SessionClaims{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return port.SessionClaims{}, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthenticated)
	}
	return port.SessionClaims{
		SessionID: claims.SessionID,
		UserID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
