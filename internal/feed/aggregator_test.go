package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebrohq/cerebro/internal/domain"
)

// stubFetcher returns canned articles per source name. A source missing from
// the map behaves like a failed fetch (empty contribution).
type stubFetcher struct {
	bySource map[string][]domain.Article
}

func (s *stubFetcher) Fetch(_ context.Context, source domain.FeedSource) []domain.Article {
	return s.bySource[source.Name]
}

func article(title string, published time.Time) domain.Article {
	return domain.Article{
		Title:       title,
		Link:        "https://example.com/" + title,
		PublishedAt: published,
		Category:    domain.CategoryIntel,
	}
}

func TestFetchCategoryMergesAndSorts(t *testing.T) {
	now := time.Now().UTC()
	sources := []domain.FeedSource{
		{Name: "S1", URL: "https://s1.example/rss", Category: domain.CategoryIntel},
		{Name: "S2", URL: "https://s2.example/rss", Category: domain.CategoryIntel},
		{Name: "S3", URL: "https://s3.example/rss", Category: domain.CategoryIntel},
		{Name: "F1", URL: "https://f1.example/rss", Category: domain.CategoryFinance},
	}

	// S2 times out: it contributes nothing and raises nothing.
	fetcher := &stubFetcher{bySource: map[string][]domain.Article{
		"S1": {
			article("a1", now.Add(-1*time.Hour)),
			article("a2", now.Add(-3*time.Hour)),
			article("a3", now.Add(-5*time.Hour)),
		},
		"S3": {
			article("b1", now.Add(-2*time.Hour)),
			article("b2", now.Add(-4*time.Hour)),
		},
		"F1": {article("finance-only", now)},
	}}

	agg := NewAggregator(fetcher, sources)
	got := agg.FetchCategory(context.Background(), domain.CategoryIntel)

	require.Len(t, got, 5)
	titles := make([]string, len(got))
	for i, a := range got {
		titles[i] = a.Title
	}
	assert.Equal(t, []string{"a1", "b1", "a2", "b2", "a3"}, titles)

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].PublishedAt.After(got[i-1].PublishedAt),
			"articles must be sorted newest first")
	}
}

func TestFetchCategoryStableOnEqualTimestamps(t *testing.T) {
	ts := time.Now().UTC()
	sources := []domain.FeedSource{
		{Name: "S1", Category: domain.CategoryIntel},
		{Name: "S2", Category: domain.CategoryIntel},
	}
	fetcher := &stubFetcher{bySource: map[string][]domain.Article{
		"S1": {article("first", ts)},
		"S2": {article("second", ts)},
	}}

	agg := NewAggregator(fetcher, sources)
	got := agg.FetchCategory(context.Background(), domain.CategoryIntel)

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title, "ties keep source-registry order")
	assert.Equal(t, "second", got[1].Title)
}

func TestFetchCategoryAllSourcesFailed(t *testing.T) {
	sources := []domain.FeedSource{
		{Name: "S1", Category: domain.CategoryGov},
	}
	agg := NewAggregator(&stubFetcher{}, sources)

	got := agg.FetchCategory(context.Background(), domain.CategoryGov)
	assert.Empty(t, got)
}

func TestSourcesByCategory(t *testing.T) {
	intel := SourcesByCategory(Sources, domain.CategoryIntel)
	require.NotEmpty(t, intel)
	for _, s := range intel {
		assert.Equal(t, domain.CategoryIntel, s.Category)
	}
}
