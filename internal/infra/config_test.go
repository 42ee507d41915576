package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, BackendMemory, cfg.StorageBackend)
	require.Equal(t, 24*time.Hour, cfg.SessionSweep)
	require.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoadConfigPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", BackendPostgres)

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/wastenot")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendPostgres, cfg.StorageBackend)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "filesystem")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "1")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.Equal(t, 5, cfg.RateLimitPerMin)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
