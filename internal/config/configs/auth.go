package configs

import "time"

// Auth configures the single demo account and the bearer tokens handed out
// after login. PasswordHash, a bcrypt hash, takes precedence over Password.
type Auth struct {
	Email        string `env:"EMAIL" envDefault:"user@example.com"`
	Password     string `env:"PASSWORD" envDefault:"password"`
	PasswordHash string `env:"PASSWORD_HASH"`
	UserID       string `env:"USER_ID" envDefault:"1"`
	DisplayName  string `env:"DISPLAY_NAME" envDefault:"Demo User"`

	// Delay simulates the latency of a remote identity check.
	Delay time.Duration `env:"DELAY" envDefault:"1s"`

	// JWTSecret signs bearer tokens. When empty a random secret is
	// generated at startup.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}
