package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 15, cfg.Feeds.MaxItems)
	assert.Equal(t, 10*time.Second, cfg.Feeds.Timeout.Duration)
	assert.Equal(t, 5*time.Minute, cfg.Refresh.Interval.Duration)
	assert.Equal(t, 50, cfg.Polymarket.FetchLimit)
	assert.Equal(t, 20, cfg.Polymarket.MaxRelevant)
	assert.Equal(t, 120, cfg.Server.CacheMaxAge)
	assert.Equal(t, "full", cfg.Mode)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Defaults()
	cfg.Mode = "turbo"
	cfg.Feeds.MaxItems = 0
	cfg.Polymarket.GammaHost = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mode "turbo"`)
	assert.Contains(t, err.Error(), "max_items must be >= 1")
	assert.Contains(t, err.Error(), "gamma_host must not be empty")
}

func TestValidateTelegramPairing(t *testing.T) {
	cfg := Defaults()
	cfg.Notify.TelegramToken = "123:abc"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram_token and telegram_chat_id must be set together")

	cfg.Notify.TelegramChatID = "42"
	require.NoError(t, cfg.Validate())
}

func TestValidateMonitorRequiresBaseURL(t *testing.T) {
	cfg := Defaults()
	cfg.Mode = "monitor"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required for monitor mode")

	cfg.Monitor.BaseURL = "http://localhost:8000"
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Server.Port, cfg.Server.Port)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cerebro.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode = "server"

[feeds]
timeout = "3s"

[refresh]
interval = "90s"

[server]
port = 9100
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "server", cfg.Mode)
	assert.Equal(t, 3*time.Second, cfg.Feeds.Timeout.Duration)
	assert.Equal(t, 90*time.Second, cfg.Refresh.Interval.Duration)
	assert.Equal(t, 9100, cfg.Server.Port)
	// Untouched sections keep their defaults.
	assert.Equal(t, 15, cfg.Feeds.MaxItems)
	assert.Equal(t, "https://gamma-api.polymarket.com", cfg.Polymarket.GammaHost)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CEREBRO_REFRESH_INTERVAL", "30s")
	t.Setenv("CEREBRO_SERVER_PORT", "9200")
	t.Setenv("CEREBRO_NOTIFY_EVENTS", "watchlist_match, refresh_failed")
	t.Setenv("CEREBRO_SERVER_ENABLED", "false")

	cfg := Defaults()
	applyEnvOverrides(&cfg)

	assert.Equal(t, 30*time.Second, cfg.Refresh.Interval.Duration)
	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, []string{"watchlist_match", "refresh_failed"}, cfg.Notify.Events)
	assert.False(t, cfg.Server.Enabled)
}
