package feed

import (
	"context"
	"sort"
	"sync"

	"github.com/cerebrohq/cerebro/internal/domain"
)

// SourceFetcher fetches one source. Implemented by *Fetcher; declared as an
// interface so the aggregator can be tested without the network.
type SourceFetcher interface {
	Fetch(ctx context.Context, source domain.FeedSource) []domain.Article
}

// Aggregator fans out fetches across every source in a category and merges
// the results.
type Aggregator struct {
	fetcher SourceFetcher
	sources []domain.FeedSource
}

// NewAggregator creates an Aggregator over the given source registry.
func NewAggregator(fetcher SourceFetcher, sources []domain.FeedSource) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		sources: sources,
	}
}

// FetchCategory returns every article from every source in the category,
// newest first. All sources are fetched concurrently and awaited to
// completion; a failed source simply contributes zero articles for this
// cycle — the next refresh is the retry mechanism. The sort is stable, so
// articles with equal timestamps keep source-registry order.
func (a *Aggregator) FetchCategory(ctx context.Context, category domain.Category) []domain.Article {
	matching := SourcesByCategory(a.sources, category)

	results := make([][]domain.Article, len(matching))
	var wg sync.WaitGroup
	for i, src := range matching {
		wg.Add(1)
		go func(i int, src domain.FeedSource) {
			defer wg.Done()
			results[i] = a.fetcher.Fetch(ctx, src)
		}(i, src)
	}
	wg.Wait()

	var articles []domain.Article
	for _, r := range results {
		articles = append(articles, r...)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}
