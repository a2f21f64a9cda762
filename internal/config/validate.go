package config

import (
	"errors"
	"fmt"

	"campaign-desk/internal/config/configs"
)

// Validate reports every inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Store.Driver {
	case configs.StoreMemory, configs.StorePostgres:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER: unknown driver %q", c.Store.Driver))
	}

	switch c.Copy.Provider {
	case configs.ProviderNone, configs.ProviderOpenAI, configs.ProviderBedrock:
	default:
		errs = append(errs, fmt.Errorf("COPY_PROVIDER: unknown provider %q", c.Copy.Provider))
	}

	if c.Auth.Email == "" {
		errs = append(errs, errors.New("AUTH_EMAIL: must not be empty"))
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		errs = append(errs, errors.New("AUTH_PASSWORD or AUTH_PASSWORD_HASH must be set"))
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("AUTH_JWT_SECRET: must be at least 32 bytes"))
	}

	if c.Copy.RatePerMinute < 0 || c.Copy.RateBurst < 0 {
		errs = append(errs, errors.New("COPY_RATE_PER_MINUTE and COPY_RATE_BURST must not be negative"))
	}

	return errors.Join(errs...)
}
