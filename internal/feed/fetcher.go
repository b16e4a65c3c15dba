// Package feed fetches remote RSS/Atom sources and normalizes their items
// into canonical articles. Every fetch is failure-isolated: a source that
// cannot be reached or parsed contributes nothing and never raises an error
// to its caller.
package feed

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/cerebrohq/cerebro/internal/domain"
)

const snippetMaxLen = 200

// Fetcher retrieves and normalizes a single feed source.
type Fetcher struct {
	parser   *gofeed.Parser
	maxItems int
	timeout  time.Duration
	logger   *slog.Logger
}

// NewFetcher creates a Fetcher. Each fetch is bounded by timeout and
// identifies itself with userAgent; at most maxItems items are taken per
// feed, in feed order.
func NewFetcher(timeout time.Duration, userAgent string, maxItems int, logger *slog.Logger) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &Fetcher{
		parser:   parser,
		maxItems: maxItems,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "feed")),
	}
}

// Fetch retrieves one source and returns its normalized articles, capped at
// the fetcher's item limit. On any network, timeout, or parse failure it
// logs the problem and returns an empty slice.
func (f *Fetcher) Fetch(ctx context.Context, source domain.FeedSource) []domain.Article {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		f.logger.WarnContext(ctx, "feed fetch failed",
			slog.String("source", source.Name),
			slog.String("url", source.URL),
			slog.String("error", err.Error()),
		)
		return nil
	}

	items := parsed.Items
	if len(items) > f.maxItems {
		items = items[:f.maxItems]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, f.normalize(source, item))
	}
	return articles
}

// normalize converts one raw feed item into an Article, applying the
// defaulting and sanitization rules for missing or messy fields.
func (f *Fetcher) normalize(source domain.FeedSource, item *gofeed.Item) domain.Article {
	title := item.Title
	if title == "" {
		title = "Untitled"
	}

	link := item.Link
	if link == "" {
		link = "#"
	}

	publishedAt := time.Now().UTC()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		publishedAt = *item.UpdatedParsed
	}

	raw := item.Description
	if raw == "" {
		raw = item.Content
	}

	return domain.Article{
		Title:       title,
		Link:        link,
		PublishedAt: publishedAt,
		Source:      source.Name,
		Snippet:     truncate(stripHTML(raw), snippetMaxLen),
		Category:    source.Category,
	}
}
