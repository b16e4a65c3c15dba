package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cerebrohq/cerebro/internal/refresh"
	"github.com/cerebrohq/cerebro/internal/server"
	"github.com/cerebrohq/cerebro/internal/server/handler"
	"github.com/cerebrohq/cerebro/internal/server/ws"
)

// FullMode runs the HTTP server and the refresh loop in one process. The
// refresh loop uses the in-process core directly and pushes completed
// snapshots to WebSocket clients.
func (a *App) FullMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting full mode")

	g, ctx := errgroup.WithContext(ctx)

	hub := ws.NewHub(a.logger)
	g.Go(func() error {
		err := hub.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("ws hub: %w", err)
	})

	orch := refresh.NewOrchestrator(
		deps.Core,
		deps.Session,
		deps.Notifier,
		hub,
		a.cfg.Refresh.Interval.Duration,
		a.logger,
	)

	// Seed the idle state before serving, the way the full-page render path
	// computes every category plus markets up front.
	orch.Seed(deps.Core.FullSnapshot(ctx))

	g.Go(func() error {
		err := orch.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("refresh loop: %w", err)
	})

	if a.cfg.Server.Enabled {
		a.startServer(ctx, g, deps, hub)
	}

	return g.Wait()
}

// ServerMode runs the HTTP API only; clients drive their own refresh.
func (a *App) ServerMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting server mode")

	g, ctx := errgroup.WithContext(ctx)
	a.startServer(ctx, g, deps, nil)
	return g.Wait()
}

// MonitorMode runs the client-resident refresh loop against a remote server,
// driving watchlist notifications from this machine.
func (a *App) MonitorMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting monitor mode",
		slog.String("base_url", a.cfg.Monitor.BaseURL),
	)

	client := refresh.NewHTTPClient(a.cfg.Monitor.BaseURL, a.cfg.Feeds.UserAgent)
	orch := refresh.NewOrchestrator(
		client,
		deps.Session,
		deps.Notifier,
		nil,
		a.cfg.Refresh.Interval.Duration,
		a.logger,
	)

	err := orch.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// OnceMode computes a single full snapshot, writes it to stdout as JSON, and
// exits.
func (a *App) OnceMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting once mode")

	snap := deps.Core.FullSnapshot(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("app: encode snapshot: %w", err)
	}
	return nil
}

// startServer builds the HTTP server and registers its run and shutdown
// goroutines on the errgroup.
func (a *App) startServer(ctx context.Context, g *errgroup.Group, deps *Dependencies, hub *ws.Hub) {
	srv := server.NewServer(
		server.Config{
			Port:        a.cfg.Server.Port,
			CORSOrigins: a.cfg.Server.CORSOrigins,
			CacheMaxAge: a.cfg.Server.CacheMaxAge,
		},
		server.Handlers{
			Health:  handler.NewHealthHandler(),
			News:    handler.NewNewsHandler(deps.Core, a.cfg.Server.CacheMaxAge, a.logger),
			Markets: handler.NewMarketsHandler(deps.Core, a.cfg.Server.CacheMaxAge, a.logger),
		},
		hub,
		a.logger,
	)

	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", slog.String("error", err.Error()))
		}
		return nil
	})
}
