package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebrohq/cerebro/internal/domain"
	"github.com/cerebrohq/cerebro/internal/feed"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingFetcher serves one canned article per source and counts fetches.
type countingFetcher struct {
	calls atomic.Int64
}

func (c *countingFetcher) Fetch(_ context.Context, source domain.FeedSource) []domain.Article {
	c.calls.Add(1)
	return []domain.Article{{
		Title:       "article from " + source.Name,
		Link:        "https://example.com/" + source.Name,
		Source:      source.Name,
		Category:    source.Category,
		PublishedAt: time.Now().UTC(),
	}}
}

type staticMarkets struct {
	events []domain.MarketEvent
}

func (s *staticMarkets) FetchRelevant(_ context.Context) []domain.MarketEvent {
	return s.events
}

var serviceConflicts = []domain.Conflict{
	{ID: "alpha", Name: "Alpha Conflict", Keywords: []string{"alpha-source"}},
}

func serviceSources() []domain.FeedSource {
	return []domain.FeedSource{
		{Name: "alpha-source", URL: "https://example.com/a.rss", Category: domain.CategoryIntel},
		{Name: "beta-source", URL: "https://example.com/b.rss", Category: domain.CategoryFinance},
	}
}

func TestNewsInvalidCategory(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := NewService(feed.NewAggregator(fetcher, serviceSources()), serviceConflicts, &staticMarkets{}, testLogger())

	_, err := svc.News(context.Background(), domain.Category("sports"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCategory))
	assert.Equal(t, int64(0), fetcher.calls.Load(), "validation rejects before any fetch")
}

func TestNewsIntelCorrelates(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := NewService(feed.NewAggregator(fetcher, serviceSources()), serviceConflicts, &staticMarkets{}, testLogger())

	resp, err := svc.News(context.Background(), domain.CategoryIntel)
	require.NoError(t, err)
	require.Len(t, resp.Articles, 1)

	// The stub article's title contains its source name, which is a keyword
	// of the alpha conflict.
	assert.Equal(t, []string{"alpha"}, resp.Articles[0].MatchedConflicts)
	require.Len(t, resp.ConflictsWithNews, 1)
	assert.Equal(t, "alpha", resp.ConflictsWithNews[0].ID)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestNewsNonIntelSkipsCorrelation(t *testing.T) {
	fetcher := &countingFetcher{}
	svc := NewService(feed.NewAggregator(fetcher, serviceSources()), serviceConflicts, &staticMarkets{}, testLogger())

	resp, err := svc.News(context.Background(), domain.CategoryFinance)
	require.NoError(t, err)
	require.Len(t, resp.Articles, 1)
	assert.Nil(t, resp.Articles[0].MatchedConflicts)
	assert.Nil(t, resp.ConflictsWithNews)
}

func TestFullSnapshot(t *testing.T) {
	fetcher := &countingFetcher{}
	markets := &staticMarkets{events: []domain.MarketEvent{{ID: "m1", Title: "ceasefire?"}}}
	svc := NewService(feed.NewAggregator(fetcher, serviceSources()), serviceConflicts, markets, testLogger())

	snap := svc.FullSnapshot(context.Background())

	assert.Len(t, snap.Intel, 1)
	assert.Len(t, snap.Finance, 1)
	assert.Empty(t, snap.Tech, "categories with no sources come back empty")
	assert.Len(t, snap.ConflictsWithNews, 1)
	assert.Len(t, snap.MarketEvents, 1)
	assert.NotEmpty(t, snap.LastUpdated)
}
