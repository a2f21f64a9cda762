package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "user@example.com", cfg.Auth.Email)
	assert.Equal(t, "password", cfg.Auth.Password)
	assert.Equal(t, time.Second, cfg.Auth.Delay)
	assert.Equal(t, configs.ProviderOpenAI, cfg.Copy.Provider)
	assert.Equal(t, 15*time.Second, cfg.Copy.Timeout)
	assert.False(t, cfg.Campaign.LockReviewed)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadWith(env.Options{Environment: map[string]string{
		"HTTP_PORT":              "9090",
		"HTTP_ALLOWED_ORIGINS":   "https://desk.example.com",
		"STORE_DRIVER":           "postgres",
		"STORE_SEED_DEMO":        "true",
		"AUTH_DELAY":             "0s",
		"COPY_PROVIDER":          "bedrock",
		"COPY_RATE_PER_MINUTE":   "60",
		"CAMPAIGN_LOCK_REVIEWED": "true",
		"CATALOG_PATH":           "/etc/campaign-desk/targeting.yaml",
	}})
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, []string{"https://desk.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, configs.StorePostgres, cfg.Store.Driver)
	assert.True(t, cfg.Store.SeedDemo)
	assert.Zero(t, cfg.Auth.Delay)
	assert.Equal(t, configs.ProviderBedrock, cfg.Copy.Provider)
	assert.Equal(t, 60, cfg.Copy.RatePerMinute)
	assert.True(t, cfg.Campaign.LockReviewed)
	assert.Equal(t, "/etc/campaign-desk/targeting.yaml", cfg.Catalog.Path)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	_, err := LoadWith(env.Options{Environment: map[string]string{
		"STORE_DRIVER":    "mongo",
		"COPY_PROVIDER":   "llama",
		"AUTH_JWT_SECRET": "short",
		"COPY_RATE_BURST": "-1",
	}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "STORE_DRIVER")
	assert.ErrorContains(t, err, "COPY_PROVIDER")
	assert.ErrorContains(t, err, "COPY_RATE_BURST")
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}
