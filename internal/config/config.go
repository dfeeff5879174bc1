package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort          = "3001"
	defaultAccessTTL     = "15m"
	defaultRefreshTTL    = "7d"
	defaultAccessSecret  = "change-me-access-secret"
	defaultRefreshSecret = "change-me-refresh-secret"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	// Access and refresh tokens are signed under independent secrets so a
	// leaked access token can never be replayed as a refresh token.
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", "tasktracker.db")

	cfg.AccessSecret = strings.TrimSpace(getEnv("JWT_ACCESS_SECRET", defaultAccessSecret))
	cfg.RefreshSecret = strings.TrimSpace(getEnv("JWT_REFRESH_SECRET", defaultRefreshSecret))

	cfg.AccessTTL = lifetimeEnv("ACCESS_TOKEN_EXPIRY", defaultAccessTTL)
	cfg.RefreshTTL = lifetimeEnv("REFRESH_TOKEN_EXPIRY", defaultRefreshTTL)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return fmt.Errorf("token secrets must not be empty")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.AccessSecret == defaultAccessSecret {
			return fmt.Errorf("in prod/release JWT_ACCESS_SECRET must be set and not default")
		}
		if cfg.RefreshSecret == defaultRefreshSecret {
			return fmt.Errorf("in prod/release JWT_REFRESH_SECRET must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

// lifetimeEnv reads a token lifetime in the <integer><unit> grammar. A value
// that does not parse falls back to the hardcoded default instead of failing
// startup.
func lifetimeEnv(name, fallback string) time.Duration {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := ParseLifetime(value)
	if err != nil {
		log.Printf("invalid %s value %q, using default %s", name, value, fallback)
		d, _ = ParseLifetime(fallback)
	}
	return d
}

// ParseLifetime parses durations like "30s", "15m", "12h", "7d". Unlike
// time.ParseDuration it accepts a day unit and rejects composite values.
func ParseLifetime(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid lifetime %q", s)
	}
	magnitude, unit := s[:len(s)-1], s[len(s)-1]
	n, err := strconv.Atoi(magnitude)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid lifetime %q", s)
	}

	switch unit {
	case 's':
		return time.Duration(n) * time.Second, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid lifetime unit %q", s)
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
