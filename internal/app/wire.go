package app

import (
	"fmt"
	"log/slog"

	"github.com/cerebrohq/cerebro/internal/config"
	"github.com/cerebrohq/cerebro/internal/conflict"
	"github.com/cerebrohq/cerebro/internal/core"
	"github.com/cerebrohq/cerebro/internal/feed"
	"github.com/cerebrohq/cerebro/internal/localstate"
	"github.com/cerebrohq/cerebro/internal/markets"
	"github.com/cerebrohq/cerebro/internal/notify"
	"github.com/cerebrohq/cerebro/internal/platform/polymarket"
)

// Dependencies bundles everything the application modes need to operate.
type Dependencies struct {
	Core     *core.Service
	Session  *localstate.Session
	Notifier *notify.Notifier
}

// Wire constructs all concrete dependency implementations from the given
// configuration.
func Wire(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	conflicts, err := conflict.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("load conflict registry: %w", err)
	}

	fetcher := feed.NewFetcher(
		cfg.Feeds.Timeout.Duration,
		cfg.Feeds.UserAgent,
		cfg.Feeds.MaxItems,
		logger,
	)
	aggregator := feed.NewAggregator(fetcher, feed.Sources)

	gamma := polymarket.NewGammaClient(cfg.Polymarket.GammaHost, cfg.Feeds.UserAgent)
	marketSvc := markets.NewService(gamma, cfg.Polymarket.FetchLimit, cfg.Polymarket.MaxRelevant, logger)

	coreSvc := core.NewService(aggregator, conflicts, marketSvc, logger)

	store, err := localstate.NewFileStore(cfg.State.Dir)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	session := localstate.NewSession(store, logger)

	var senders []notify.Sender
	if cfg.Notify.TelegramToken != "" && cfg.Notify.TelegramChatID != "" {
		senders = append(senders, notify.NewTelegramSender(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID))
	}
	if cfg.Notify.DiscordWebhookURL != "" {
		senders = append(senders, notify.NewDiscordSender(cfg.Notify.DiscordWebhookURL))
	}
	if len(senders) == 0 {
		senders = append(senders, notify.NewLogSender(logger))
	}
	notifier := notify.NewNotifier(senders, cfg.Notify.Events, logger)

	return &Dependencies{
		Core:     coreSvc,
		Session:  session,
		Notifier: notifier,
	}, nil
}
