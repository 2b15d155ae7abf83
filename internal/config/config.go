package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	APIURL         string
	HTTPTimeout    time.Duration
	DebounceWindow time.Duration
	ToastTTL       time.Duration
	NavigateDelay  time.Duration
	TokenCachePath string
	LogLevel       string
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		APIURL:         strings.TrimRight(strings.TrimSpace(os.Getenv("SWEETSHOP_API_URL")), "/"),
		HTTPTimeout:    duration(os.Getenv("SWEETSHOP_HTTP_TIMEOUT_MS"), 10*time.Second),
		DebounceWindow: duration(os.Getenv("SWEETSHOP_DEBOUNCE_MS"), 500*time.Millisecond),
		ToastTTL:       duration(os.Getenv("SWEETSHOP_TOAST_TTL_MS"), 4*time.Second),
		NavigateDelay:  duration(os.Getenv("SWEETSHOP_NAVIGATE_DELAY_MS"), time.Second),
		TokenCachePath: fallback(os.Getenv("SWEETSHOP_TOKEN_CACHE"), defaultTokenCachePath()),
		LogLevel:       fallback(os.Getenv("SWEETSHOP_LOG_LEVEL"), "info"),
	}

	if cfg.APIURL == "" {
		return Config{}, errors.New("SWEETSHOP_API_URL is required")
	}

	return cfg, nil
}

func defaultTokenCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sweetshop_token"
	}
	return filepath.Join(home, ".sweetshop", "token")
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func duration(value string, def time.Duration) time.Duration {
	ms, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
