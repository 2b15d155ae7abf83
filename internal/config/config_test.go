package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIURL(t *testing.T) {
	t.Setenv("SWEETSHOP_API_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SWEETSHOP_API_URL", "http://localhost:5000/")
	t.Setenv("SWEETSHOP_HTTP_TIMEOUT_MS", "")
	t.Setenv("SWEETSHOP_DEBOUNCE_MS", "")
	t.Setenv("SWEETSHOP_TOAST_TTL_MS", "")
	t.Setenv("SWEETSHOP_NAVIGATE_DELAY_MS", "")
	t.Setenv("SWEETSHOP_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.APIURL, "trailing slash should be stripped")
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceWindow)
	assert.Equal(t, 4*time.Second, cfg.ToastTTL)
	assert.Equal(t, time.Second, cfg.NavigateDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.TokenCachePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SWEETSHOP_API_URL", "https://sweets.example.com")
	t.Setenv("SWEETSHOP_DEBOUNCE_MS", "250")
	t.Setenv("SWEETSHOP_TOAST_TTL_MS", "junk")
	t.Setenv("SWEETSHOP_LOG_LEVEL", " debug ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.DebounceWindow)
	assert.Equal(t, 4*time.Second, cfg.ToastTTL, "unparseable value falls back to default")
	assert.Equal(t, "debug", cfg.LogLevel)
}
