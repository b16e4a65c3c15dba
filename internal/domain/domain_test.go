package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("sports").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Intel").Valid(), "categories are case-sensitive")
}

func TestArticleKey(t *testing.T) {
	assert.Equal(t, "https://example.com/1", Article{Title: "t", Link: "https://example.com/1"}.Key())
	assert.Equal(t, "Untitled", Article{Title: "Untitled", Link: "#"}.Key(), "placeholder links fall back to the title")
	assert.Equal(t, "No link here", Article{Title: "No link here"}.Key())
}

func TestTopOutcome(t *testing.T) {
	e := MarketEvent{
		Outcomes:      []string{"Yes", "No"},
		OutcomePrices: []string{"0.35", "0.65"},
	}

	name, prob, ok := e.TopOutcome()
	require.True(t, ok)
	assert.Equal(t, "No", name)
	assert.True(t, prob.Equal(decimal.RequireFromString("0.65")))
}

func TestTopOutcomeUnparseablePriceCountsAsZero(t *testing.T) {
	e := MarketEvent{
		Outcomes:      []string{"Yes", "No"},
		OutcomePrices: []string{"garbage", "0.1"},
	}

	name, prob, ok := e.TopOutcome()
	require.True(t, ok)
	assert.Equal(t, "No", name)
	assert.True(t, prob.Equal(decimal.RequireFromString("0.1")))
}

func TestTopOutcomeEmpty(t *testing.T) {
	_, _, ok := MarketEvent{}.TopOutcome()
	assert.False(t, ok)

	_, _, ok = MarketEvent{Outcomes: []string{"Yes"}, OutcomePrices: []string{}}.TopOutcome()
	assert.False(t, ok, "mismatched pairs carry no top outcome")
}

func TestFormatTimestamp(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	ts := time.Date(2026, time.March, 7, 14, 5, 0, 0, loc)
	assert.Equal(t, "Mar 7, 2:05 PM EST", FormatTimestamp(ts))
}

func TestSnapshotArticlesRoundTrip(t *testing.T) {
	var snap Snapshot
	articles := []Article{{Title: "a", Category: CategoryTech}}

	snap.SetArticles(CategoryTech, articles)
	assert.Equal(t, articles, snap.Articles(CategoryTech))
	assert.Nil(t, snap.Articles(Category("sports")))

	snap.SetArticles(Category("sports"), articles)
	assert.Nil(t, snap.Articles(Category("sports")), "unknown categories are ignored")
}
