package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/core/domain"
)

// fixedIdentity accepts one email/password pair.
type fixedIdentity struct {
	email, password string
	user            domain.User
}

func (f fixedIdentity) Verify(_ context.Context, email, password string) (*domain.User, error) {
	if email != f.email || password != f.password {
		return nil, domain.ErrInvalidCredentials
	}
	u := f.user
	return &u, nil
}

func newTestGate(delay time.Duration) (*AuthUseCase, *[]time.Duration) {
	identity := fixedIdentity{
		email:    "user@example.com",
		password: "password",
		user:     domain.User{ID: "1", Email: "user@example.com", DisplayName: "Demo User"},
	}
	gate := NewAuthUseCase(identity, delay, nil, discardLogger())
	var slept []time.Duration
	gate.sleep = func(d time.Duration) { slept = append(slept, d) }
	return gate, &slept
}

func TestAuthenticateSuccess(t *testing.T) {
	gate, _ := newTestGate(0)

	session, err := gate.Authenticate(context.Background(), "user@example.com", "password")

	require.NoError(t, err)
	assert.Equal(t, "1", session.User.ID)
	assert.Equal(t, "Demo User", session.User.DisplayName)
	assert.NotEmpty(t, session.ID)

	current, ok := gate.Current()
	require.True(t, ok)
	assert.Equal(t, session.ID, current.ID)
}

func TestAuthenticateFailureKeepsSession(t *testing.T) {
	gate, _ := newTestGate(0)

	_, err := gate.Authenticate(context.Background(), "user@example.com", "nope")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, ok := gate.Current()
	assert.False(t, ok)

	session, err := gate.Authenticate(context.Background(), "user@example.com", "password")
	require.NoError(t, err)
	_, err = gate.Authenticate(context.Background(), "other@example.com", "password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	current, ok := gate.Current()
	require.True(t, ok)
	assert.Equal(t, session.ID, current.ID)
}

func TestAuthenticateReplacesSession(t *testing.T) {
	gate, _ := newTestGate(0)

	first, err := gate.Authenticate(context.Background(), "user@example.com", "password")
	require.NoError(t, err)
	second, err := gate.Authenticate(context.Background(), "user@example.com", "password")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	current, ok := gate.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
}

func TestAuthenticateAppliesDelay(t *testing.T) {
	gate, slept := newTestGate(time.Second)

	_, _ = gate.Authenticate(context.Background(), "user@example.com", "password")
	_, _ = gate.Authenticate(context.Background(), "user@example.com", "wrong")

	assert.Equal(t, []time.Duration{time.Second, time.Second}, *slept)
}

func TestEndSession(t *testing.T) {
	gate, _ := newTestGate(0)
	_, err := gate.Authenticate(context.Background(), "user@example.com", "password")
	require.NoError(t, err)

	gate.EndSession()

	_, ok := gate.Current()
	assert.False(t, ok)
	gate.EndSession()
}
