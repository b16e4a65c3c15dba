// Package config defines the top-level configuration for Cerebro and
// provides validation helpers.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by CEREBRO_* environment
// variables.
type Config struct {
	Feeds      FeedsConfig      `toml:"feeds"`
	Polymarket PolymarketConfig `toml:"polymarket"`
	Refresh    RefreshConfig    `toml:"refresh"`
	Server     ServerConfig     `toml:"server"`
	Monitor    MonitorConfig    `toml:"monitor"`
	Notify     NotifyConfig     `toml:"notify"`
	State      StateConfig      `toml:"state"`
	Mode       string           `toml:"mode"`
	LogLevel   string           `toml:"log_level"`
}

// FeedsConfig holds RSS fetching parameters.
type FeedsConfig struct {
	Timeout   duration `toml:"timeout"`
	UserAgent string   `toml:"user_agent"`
	MaxItems  int      `toml:"max_items"`
}

// PolymarketConfig holds the Gamma API endpoint and filter parameters.
type PolymarketConfig struct {
	GammaHost   string `toml:"gamma_host"`
	FetchLimit  int    `toml:"fetch_limit"`
	MaxRelevant int    `toml:"max_relevant"`
}

// RefreshConfig holds the periodic refresh loop parameters.
type RefreshConfig struct {
	Interval duration `toml:"interval"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Enabled     bool     `toml:"enabled"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	// CacheMaxAge is the s-maxage value (seconds) sent on news and market
	// responses.
	CacheMaxAge int `toml:"cache_max_age"`
}

// MonitorConfig holds parameters for monitor mode, where the refresh loop
// runs against a remote Cerebro server instead of the in-process core.
type MonitorConfig struct {
	BaseURL string `toml:"base_url"`
}

// NotifyConfig holds notification channel credentials.
type NotifyConfig struct {
	TelegramToken     string   `toml:"telegram_token"`
	TelegramChatID    string   `toml:"telegram_chat_id"`
	DiscordWebhookURL string   `toml:"discord_webhook_url"`
	Events            []string `toml:"events"`
}

// StateConfig locates the client-local persisted state.
type StateConfig struct {
	// Dir is the directory holding state.json (watchlist, seen articles,
	// theme). Empty means ~/.cerebro.
	Dir string `toml:"dir"`
}

// duration is a wrapper around time.Duration that supports TOML string
// decoding (e.g. "5m", "30s").
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder can
// parse duration strings like "5m" or "10s".
func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler for round-trip encoding.
func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns a Config populated with reasonable default values.
func Defaults() Config {
	return Config{
		Feeds: FeedsConfig{
			Timeout:   duration{10 * time.Second},
			UserAgent: "GlobalConflictMonitor/1.0",
			MaxItems:  15,
		},
		Polymarket: PolymarketConfig{
			GammaHost:   "https://gamma-api.polymarket.com",
			FetchLimit:  50,
			MaxRelevant: 20,
		},
		Refresh: RefreshConfig{
			Interval: duration{5 * time.Minute},
		},
		Server: ServerConfig{
			Enabled:     true,
			Port:        8000,
			CORSOrigins: []string{"http://localhost:3000"},
			CacheMaxAge: 120,
		},
		Notify: NotifyConfig{
			Events: []string{"watchlist_match"},
		},
		Mode:     "full",
		LogLevel: "info",
	}
}

// validModes enumerates the accepted values for Config.Mode.
var validModes = map[string]bool{
	"full":    true,
	"server":  true,
	"monitor": true,
	"once":    true,
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and returns
// a combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validModes[strings.ToLower(c.Mode)] {
		errs = append(errs, fmt.Sprintf("unknown mode %q (valid: full, server, monitor, once)", c.Mode))
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	if c.Feeds.Timeout.Duration <= 0 {
		errs = append(errs, "feeds: timeout must be positive")
	}
	if c.Feeds.MaxItems < 1 {
		errs = append(errs, "feeds: max_items must be >= 1")
	}
	if c.Feeds.UserAgent == "" {
		errs = append(errs, "feeds: user_agent must not be empty")
	}

	if c.Polymarket.GammaHost == "" {
		errs = append(errs, "polymarket: gamma_host must not be empty")
	}
	if c.Polymarket.FetchLimit < 1 {
		errs = append(errs, "polymarket: fetch_limit must be >= 1")
	}
	if c.Polymarket.MaxRelevant < 1 {
		errs = append(errs, "polymarket: max_relevant must be >= 1")
	}

	if c.Refresh.Interval.Duration <= 0 {
		errs = append(errs, "refresh: interval must be positive")
	}

	if c.Server.Enabled {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, fmt.Sprintf("server: port must be 1-65535, got %d", c.Server.Port))
		}
		if c.Server.CacheMaxAge < 0 {
			errs = append(errs, "server: cache_max_age must be >= 0")
		}
	}

	if strings.ToLower(c.Mode) == "monitor" && c.Monitor.BaseURL == "" {
		errs = append(errs, "monitor: base_url is required for monitor mode")
	}

	// Telegram credentials must be set together, or not at all.
	tt := c.Notify.TelegramToken != ""
	tc := c.Notify.TelegramChatID != ""
	if tt != tc {
		errs = append(errs, "notify: telegram_token and telegram_chat_id must be set together")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
