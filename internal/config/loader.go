package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies CEREBRO_* environment variable overrides, and
// returns the final Config. A missing file is not an error; defaults plus
// environment overrides still apply. The returned Config has NOT been
// validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known CEREBRO_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject secrets at deploy time without touching the TOML
// file.
func applyEnvOverrides(cfg *Config) {
	// ── Feeds ──
	setDuration(&cfg.Feeds.Timeout, "CEREBRO_FEEDS_TIMEOUT")
	setStr(&cfg.Feeds.UserAgent, "CEREBRO_FEEDS_USER_AGENT")
	setInt(&cfg.Feeds.MaxItems, "CEREBRO_FEEDS_MAX_ITEMS")

	// ── Polymarket ──
	setStr(&cfg.Polymarket.GammaHost, "CEREBRO_POLYMARKET_GAMMA_HOST")
	setInt(&cfg.Polymarket.FetchLimit, "CEREBRO_POLYMARKET_FETCH_LIMIT")
	setInt(&cfg.Polymarket.MaxRelevant, "CEREBRO_POLYMARKET_MAX_RELEVANT")

	// ── Refresh ──
	setDuration(&cfg.Refresh.Interval, "CEREBRO_REFRESH_INTERVAL")

	// ── Server ──
	setBool(&cfg.Server.Enabled, "CEREBRO_SERVER_ENABLED")
	setInt(&cfg.Server.Port, "CEREBRO_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "CEREBRO_SERVER_CORS_ORIGINS")
	setInt(&cfg.Server.CacheMaxAge, "CEREBRO_SERVER_CACHE_MAX_AGE")

	// ── Monitor ──
	setStr(&cfg.Monitor.BaseURL, "CEREBRO_MONITOR_BASE_URL")

	// ── Notify ──
	setStr(&cfg.Notify.TelegramToken, "CEREBRO_NOTIFY_TELEGRAM_TOKEN")
	setStr(&cfg.Notify.TelegramChatID, "CEREBRO_NOTIFY_TELEGRAM_CHAT_ID")
	setStr(&cfg.Notify.DiscordWebhookURL, "CEREBRO_NOTIFY_DISCORD_WEBHOOK_URL")
	setStringSlice(&cfg.Notify.Events, "CEREBRO_NOTIFY_EVENTS")

	// ── State ──
	setStr(&cfg.State.Dir, "CEREBRO_STATE_DIR")

	// ── Top-level ──
	setStr(&cfg.Mode, "CEREBRO_MODE")
	setStr(&cfg.LogLevel, "CEREBRO_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
