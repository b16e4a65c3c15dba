package domain

import "time"

// TimestampLayout is the human-readable "last updated" format shown to users.
const TimestampLayout = "Jan 2, 3:04 PM MST"

// Snapshot is the full dashboard view: every news category, the per-conflict
// related-news views, the filtered market events, and when the data was last
// refreshed. The refresh orchestrator owns the live snapshot and replaces its
// slices wholesale as fetches settle.
type Snapshot struct {
	Intel             []Article          `json:"intelArticles"`
	Finance           []Article          `json:"financeArticles"`
	Tech              []Article          `json:"techArticles"`
	Gov               []Article          `json:"govArticles"`
	ConflictsWithNews []ConflictWithNews `json:"conflictsWithNews"`
	MarketEvents      []MarketEvent      `json:"marketEvents"`
	LastUpdated       string             `json:"lastUpdated"`
}

// Articles returns the slice for the given category, or nil for an unknown
// category.
func (s *Snapshot) Articles(c Category) []Article {
	switch c {
	case CategoryIntel:
		return s.Intel
	case CategoryFinance:
		return s.Finance
	case CategoryTech:
		return s.Tech
	case CategoryGov:
		return s.Gov
	}
	return nil
}

// SetArticles replaces the slice for the given category. Unknown categories
// are ignored.
func (s *Snapshot) SetArticles(c Category, articles []Article) {
	switch c {
	case CategoryIntel:
		s.Intel = articles
	case CategoryFinance:
		s.Finance = articles
	case CategoryTech:
		s.Tech = articles
	case CategoryGov:
		s.Gov = articles
	}
}

// FormatTimestamp renders t in the user-facing "last updated" format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
