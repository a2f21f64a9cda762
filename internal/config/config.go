package config

import (
	"github.com/caarlos0/env/v11"

	"campaign-desk/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used when Store.Driver is
	// "postgres". Environment variables prefixed with PSQL_ will populate
	// this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Store selects the campaign store.
	Store configs.Store `envPrefix:"STORE_"`

	// Auth configures the session gate and bearer tokens.
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Copy configures ad copy generation.
	Copy configs.Copy `envPrefix:"COPY_"`

	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
	Catalog  configs.Catalog  `envPrefix:"CATALOG_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith is Load with explicit parser options, such as a fixed
// environment map in tests.
func LoadWith(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
