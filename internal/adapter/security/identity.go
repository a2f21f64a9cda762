// Package security holds the credential and token adapters behind the
// session gate.
package security

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"campaign-desk/internal/core/domain"
)

// StaticIdentity admits exactly one fixed account. The password is only ever
// held as a bcrypt hash.
type StaticIdentity struct {
	email string
	hash  []byte
	user  domain.User
}

// NewStaticIdentity builds the provider from a plaintext password. The
// password is hashed once with the given bcrypt cost.
func NewStaticIdentity(user domain.User, password string, cost int) (*StaticIdentity, error) {
	if password == "" {
		return nil, errors.New("identity password is required")
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return newStaticIdentity(user, hash)
}

// NewStaticIdentityFromHash builds the provider from an existing bcrypt hash.
func NewStaticIdentityFromHash(user domain.User, hash string) (*StaticIdentity, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}
	return newStaticIdentity(user, []byte(hash))
}

func newStaticIdentity(user domain.User, hash []byte) (*StaticIdentity, error) {
	if user.Email == "" {
		return nil, errors.New("identity email is required")
	}
	return &StaticIdentity{
		email: strings.ToLower(user.Email),
		hash:  hash,
		user:  user,
	}, nil
}

// Verify compares the credentials with the configured account. Emails are
// matched case-insensitively.
func (s *StaticIdentity) Verify(_ context.Context, email, password string) (*domain.User, error) {
	// The hash is compared even on an email mismatch so both failures take
	// the same time.
	hashErr := bcrypt.CompareHashAndPassword(s.hash, []byte(password))
	if strings.ToLower(strings.TrimSpace(email)) != s.email || hashErr != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user := s.user
	return &user, nil
}
