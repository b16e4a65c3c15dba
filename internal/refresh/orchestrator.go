// Package refresh implements the client-resident polling loop: it
// periodically re-fetches every news category and the market stream through
// the boundary API, merges whatever succeeded into the live snapshot, and
// drives watchlist notifications with idempotent de-duplication.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/cerebrohq/cerebro/internal/core"
	"github.com/cerebrohq/cerebro/internal/domain"
	"github.com/cerebrohq/cerebro/internal/localstate"
	"github.com/cerebrohq/cerebro/internal/notify"
)

// Client is the boundary API the orchestrator fetches through. Satisfied by
// *core.Service (in-process) and *HTTPClient (remote server).
type Client interface {
	News(ctx context.Context, category domain.Category) (core.NewsResponse, error)
	Markets(ctx context.Context) (core.MarketsResponse, error)
}

// Broadcaster receives the snapshot after each completed refresh cycle.
// Satisfied by the server's WebSocket hub.
type Broadcaster interface {
	BroadcastSnapshot(snap *domain.Snapshot)
}

// WatchlistMatchEvent is the notification event type for watchlist hits.
const WatchlistMatchEvent = "watchlist_match"

// Orchestrator owns the live snapshot and refreshes it on a timer. There are
// two states, idle and refreshing; a trigger that arrives while a cycle is
// in flight is dropped, not queued.
type Orchestrator struct {
	client      Client
	session     *localstate.Session
	notifier    *notify.Notifier
	broadcaster Broadcaster
	interval    time.Duration
	logger      *slog.Logger

	refreshing atomic.Bool

	mu   sync.RWMutex
	snap domain.Snapshot
}

// NewOrchestrator creates an Orchestrator. session and broadcaster may be
// nil; a nil session disables notifications.
func NewOrchestrator(
	client Client,
	session *localstate.Session,
	notifier *notify.Notifier,
	broadcaster Broadcaster,
	interval time.Duration,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		client:      client,
		session:     session,
		notifier:    notifier,
		broadcaster: broadcaster,
		interval:    interval,
		logger:      logger.With(slog.String("component", "refresh")),
	}
}

// Seed installs the server-rendered initial snapshot as the idle state.
func (o *Orchestrator) Seed(snap *domain.Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap = *snap
}

// Snapshot returns a copy of the live snapshot.
func (o *Orchestrator) Snapshot() domain.Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snap
}

// Run executes the refresh loop until ctx is cancelled. A refresh runs
// immediately when no seed snapshot was installed, then on every interval
// tick. Run returns ctx.Err() on cancellation so callers can distinguish a
// clean shutdown.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.InfoContext(ctx, "refresh loop starting",
		slog.Duration("interval", o.interval),
	)

	o.mu.RLock()
	seeded := o.snap.LastUpdated != ""
	o.mu.RUnlock()
	if !seeded {
		o.RefreshOnce(ctx)
	} else if o.session != nil {
		// The seed may already carry tagged intel articles; check them
		// before the first tick so watchlist hits are not delayed by a full
		// interval.
		o.checkWatchlist(ctx, o.Snapshot().Intel)
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.logger.Info("refresh loop stopped")
			return ctx.Err()
		case <-ticker.C:
			o.RefreshOnce(ctx)
		}
	}
}

// slot holds the outcome of one of the five independent fetches.
type slot struct {
	news    core.NewsResponse
	markets core.MarketsResponse
	err     error
}

// RefreshOnce runs one refresh cycle: five independent fetches (one per news
// category plus markets), awaited to completion regardless of individual
// failure. Only successful fetches overwrite their slice of the snapshot;
// failed ones leave the previous value in place. It reports false when a
// cycle was already in flight (the trigger is a no-op). The "last updated"
// stamp advances once per completed cycle however many fetches succeeded.
func (o *Orchestrator) RefreshOnce(ctx context.Context) bool {
	if !o.refreshing.CompareAndSwap(false, true) {
		o.logger.DebugContext(ctx, "refresh already in flight, trigger dropped")
		return false
	}
	defer o.refreshing.Store(false)

	cycle := uuid.NewString()
	start := time.Now()

	slots := make([]slot, len(domain.Categories)+1)
	var wg sync.WaitGroup
	for i, category := range domain.Categories {
		wg.Add(1)
		go func(i int, category domain.Category) {
			defer wg.Done()
			slots[i].news, slots[i].err = o.client.News(ctx, category)
		}(i, category)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		last := len(slots) - 1
		slots[last].markets, slots[last].err = o.client.Markets(ctx)
	}()
	wg.Wait()

	succeeded := 0
	o.mu.Lock()
	for i, category := range domain.Categories {
		if slots[i].err != nil {
			o.logger.Warn("category fetch failed, keeping previous articles",
				slog.String("cycle", cycle),
				slog.String("category", string(category)),
				slog.String("error", slots[i].err.Error()),
			)
			continue
		}
		succeeded++
		o.snap.SetArticles(category, slots[i].news.Articles)
		if category == domain.CategoryIntel && slots[i].news.ConflictsWithNews != nil {
			o.snap.ConflictsWithNews = slots[i].news.ConflictsWithNews
		}
	}
	last := len(slots) - 1
	if slots[last].err != nil {
		o.logger.Warn("market fetch failed, keeping previous events",
			slog.String("cycle", cycle),
			slog.String("error", slots[last].err.Error()),
		)
	} else {
		succeeded++
		o.snap.MarketEvents = slots[last].markets.Events
	}
	o.snap.LastUpdated = domain.FormatTimestamp(time.Now())
	snap := o.snap
	o.mu.Unlock()

	o.logger.InfoContext(ctx, "refresh cycle complete",
		slog.String("cycle", cycle),
		slog.Int("succeeded", succeeded),
		slog.Int("total", len(slots)),
		slog.Duration("duration", time.Since(start)),
	)

	o.checkWatchlist(ctx, snap.Intel)

	if o.broadcaster != nil {
		o.broadcaster.BroadcastSnapshot(&snap)
	}
	return true
}

// checkWatchlist surfaces intel articles that match watched conflicts and
// have not been notified before. The check runs after every completed cycle
// rather than once per session: the seen-set already makes it idempotent,
// and re-arming means conflicts added to the watchlist mid-session still
// trigger alerts. Gated on a non-empty watchlist.
func (o *Orchestrator) checkWatchlist(ctx context.Context, intel []domain.Article) {
	if o.session == nil || o.session.WatchedCount() == 0 {
		return
	}

	seen := o.session.Seen()
	var fresh []domain.Article
	for _, article := range intel {
		watched := false
		for _, id := range article.MatchedConflicts {
			if o.session.IsWatched(id) {
				watched = true
				break
			}
		}
		if !watched {
			continue
		}

		key := article.Key()
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		fresh = append(fresh, article)
	}
	o.session.PersistSeen()

	if len(fresh) == 0 || o.notifier == nil {
		return
	}

	plural := ""
	if len(fresh) > 1 {
		plural = "s"
	}
	title := fmt.Sprintf("Cerebro: %d new article%s on watched conflicts", len(fresh), plural)

	examples := fresh
	if len(examples) > 3 {
		examples = examples[:3]
	}
	var body string
	for i, a := range examples {
		if i > 0 {
			body += "\n"
		}
		body += fmt.Sprintf("%s: %s", a.Source, a.Title)
	}

	if err := o.notifier.Notify(ctx, WatchlistMatchEvent, title, body); err != nil {
		o.logger.WarnContext(ctx, "watchlist notification failed",
			slog.String("error", err.Error()),
		)
	}
}
