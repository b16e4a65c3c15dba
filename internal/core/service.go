// Package core implements the boundary API of the monitor: news by
// category (with conflict correlation for intel), filtered market events,
// and the parallel full-snapshot path that seeds the refresh loop. The HTTP
// server and the in-process refresh client both call through this package.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cerebrohq/cerebro/internal/conflict"
	"github.com/cerebrohq/cerebro/internal/domain"
	"github.com/cerebrohq/cerebro/internal/feed"
)

// MarketFetcher supplies filtered market events. Implemented by
// *markets.Service.
type MarketFetcher interface {
	FetchRelevant(ctx context.Context) []domain.MarketEvent
}

// NewsResponse is the payload for one news category.
type NewsResponse struct {
	Articles []domain.Article `json:"articles"`
	// ConflictsWithNews is populated for the intel category only.
	ConflictsWithNews []domain.ConflictWithNews `json:"conflictsWithNews,omitempty"`
	Timestamp         string                    `json:"timestamp"`
}

// MarketsResponse is the payload for the markets stream.
type MarketsResponse struct {
	Events    []domain.MarketEvent `json:"events"`
	Timestamp string               `json:"timestamp"`
}

// Service is the direct, in-process implementation of the boundary API.
type Service struct {
	aggregator *feed.Aggregator
	conflicts  []domain.Conflict
	markets    MarketFetcher
	logger     *slog.Logger
}

// NewService creates the core Service over the given collaborators. The
// conflicts slice is the static registry and is never mutated.
func NewService(aggregator *feed.Aggregator, conflicts []domain.Conflict, marketSvc MarketFetcher, logger *slog.Logger) *Service {
	return &Service{
		aggregator: aggregator,
		conflicts:  conflicts,
		markets:    marketSvc,
		logger:     logger.With(slog.String("component", "core")),
	}
}

// Conflicts returns the static conflict registry.
func (s *Service) Conflicts() []domain.Conflict {
	return s.conflicts
}

// News aggregates one category. For intel it also correlates articles
// against the conflict registry and derives the per-conflict views. The only
// error it returns is ErrInvalidCategory; upstream feed failures have
// already degraded to missing articles.
func (s *Service) News(ctx context.Context, category domain.Category) (NewsResponse, error) {
	if !category.Valid() {
		return NewsResponse{}, fmt.Errorf("core: %w: %q", domain.ErrInvalidCategory, category)
	}

	articles := s.aggregator.FetchCategory(ctx, category)

	resp := NewsResponse{
		Articles:  articles,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if category == domain.CategoryIntel {
		tagged := conflict.MatchArticles(articles, s.conflicts)
		resp.Articles = tagged
		resp.ConflictsWithNews = conflict.ConflictsWithNews(s.conflicts, tagged)
	}

	return resp, nil
}

// Markets returns the currently relevant market events.
func (s *Service) Markets(ctx context.Context) (MarketsResponse, error) {
	return MarketsResponse{
		Events:    s.markets.FetchRelevant(ctx),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// FullSnapshot computes every category plus markets in parallel and returns
// the seed snapshot for the refresh loop. Individual feed failures surface
// as empty slices, so the snapshot is always valid, if possibly sparse.
func (s *Service) FullSnapshot(ctx context.Context) *domain.Snapshot {
	snap := &domain.Snapshot{}

	g, ctx := errgroup.WithContext(ctx)
	for _, category := range domain.Categories {
		category := category
		g.Go(func() error {
			resp, err := s.News(ctx, category)
			if err != nil {
				return err
			}
			snap.SetArticles(category, resp.Articles)
			if category == domain.CategoryIntel {
				snap.ConflictsWithNews = resp.ConflictsWithNews
			}
			return nil
		})
	}
	g.Go(func() error {
		snap.MarketEvents = s.markets.FetchRelevant(ctx)
		return nil
	})

	// Categories are all valid, so no goroutine can fail.
	_ = g.Wait()

	snap.LastUpdated = domain.FormatTimestamp(time.Now())
	return snap
}
