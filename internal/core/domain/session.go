package domain

import "time"

// User is the identity admitted by the auth gate.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Session is the single process-wide authenticated session.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	StartedAt time.Time `json:"started_at"`
}
