package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ErrInvalid marks configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

const maxFetchTimeout = 10 * time.Second

// Config holds all application configuration
type Config struct {
	Port              string
	DatabasePath      string
	AssetsDir         string
	ContentPath       string
	FetchTimeout      time.Duration
	AnimationCacheTTL time.Duration
	SessionTTL        time.Duration
	GinMode           string
	LogLevel          string
	AdminUsername     string
	AdminPassword     string
	FormRelayURL      string
	SecureCookies     bool
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from the environment. A .env file, if present,
// has already been applied by godotenv in main.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:          get("PORT", "8080"),
		DatabasePath:  get("DATABASE_PATH", "portfolio.db"),
		AssetsDir:     get("ASSETS_DIR", "assets"),
		ContentPath:   get("CONTENT_PATH", ""),
		GinMode:       get("GIN_MODE", "release"),
		LogLevel:      get("LOG_LEVEL", "info"),
		AdminUsername: getenv("ADMIN_USERNAME"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		FormRelayURL:  get("FORM_RELAY_URL", ""),
		SecureCookies: get("SECURE_COOKIES", "false") == "true",
	}

	var err error
	if cfg.FetchTimeout, err = duration(get("FETCH_TIMEOUT", "5s")); err != nil {
		return nil, fmt.Errorf("FETCH_TIMEOUT: %w", err)
	}
	if cfg.FetchTimeout <= 0 || cfg.FetchTimeout >= maxFetchTimeout {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be between 0 and %s: %w", maxFetchTimeout, ErrInvalid)
	}
	if cfg.AnimationCacheTTL, err = duration(get("ANIMATION_CACHE_TTL", "30m")); err != nil {
		return nil, fmt.Errorf("ANIMATION_CACHE_TTL: %w", err)
	}
	if cfg.SessionTTL, err = duration(get("SESSION_TTL", "720h")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE %q: %w", cfg.GinMode, ErrInvalid)
	}
	return cfg, nil
}

func duration(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s: %w", v, ErrInvalid)
	}
	return d, nil
}
