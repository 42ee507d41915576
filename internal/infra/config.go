package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backend selectors.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	StorageBackend   string
	DatabaseURL      string
	SessionTTL       time.Duration
	SessionSweep     time.Duration
	DefaultLocale    string
	GeoIPDBPath      string
	AllowedOrigins   []string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies
// defaults. The memory backend is the default so the service runs standalone;
// DATABASE_URL is only required when the postgres backend is selected.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		StorageBackend:   getEnv("STORAGE_BACKEND", BackendMemory),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SessionTTL:       time.Hour * time.Duration(getEnvInt("SESSION_TTL_HOURS", 24*7)),
		SessionSweep:     time.Hour * time.Duration(getEnvInt("SESSION_SWEEP_HOURS", 24)),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	switch cfg.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
