// Package domain defines the canonical data types shared by every Cerebro
// component: news articles, conflict records, prediction-market events, and
// the live snapshot the refresh loop maintains.
package domain

import "time"

// Category classifies a feed source and the articles it produces.
type Category string

const (
	CategoryIntel   Category = "intel"
	CategoryFinance Category = "finance"
	CategoryTech    Category = "tech"
	CategoryGov     Category = "gov"
)

// Categories lists every valid news category in a stable order.
var Categories = []Category{CategoryIntel, CategoryFinance, CategoryTech, CategoryGov}

// Valid reports whether c is one of the four known news categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryIntel, CategoryFinance, CategoryTech, CategoryGov:
		return true
	}
	return false
}

// FeedSource is one remote syndication endpoint. Sources are defined once at
// process start and never mutated.
type FeedSource struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Category Category `json:"category"`
}

// Article is a normalized feed item. It is created by the feed fetcher and
// never mutated afterwards, except that the conflict correlator attaches
// MatchedConflicts to intel articles.
type Article struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	Snippet     string    `json:"snippet"`
	Category    Category  `json:"category"`

	// MatchedConflicts holds the ids of conflicts whose keywords appear in
	// this article. Populated for the intel category only.
	MatchedConflicts []string `json:"matchedConflicts,omitempty"`
}

// Key returns the identity used for notification de-duplication: the link,
// falling back to the title for items without one.
func (a Article) Key() string {
	if a.Link != "" && a.Link != "#" {
		return a.Link
	}
	return a.Title
}
