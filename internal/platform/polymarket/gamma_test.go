package polymarket

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrendingEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("active"))
		assert.Equal(t, "false", q.Get("closed"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Equal(t, "volume24hr", q.Get("order"))
		assert.Equal(t, "false", q.Get("ascending"))

		fmt.Fprint(w, `[
			{
				"id": "100",
				"title": "Ceasefire by March?",
				"slug": "ceasefire-by-march",
				"outcomes": "[\"Yes\",\"No\"]",
				"outcomePrices": "[\"0.3\",\"0.7\"]",
				"volume": 123456.5,
				"liquidity": "9876.25",
				"endDate": "2026-03-31T00:00:00Z",
				"active": "true",
				"closed": false
			}
		]`)
	}))
	defer srv.Close()

	client := NewGammaClient(srv.URL, "test-agent")
	events, err := client.GetTrendingEvents(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "100", e.ID)
	assert.Equal(t, "Ceasefire by March?", e.Title)
	assert.InDelta(t, 123456.5, float64(e.Volume), 0.001)
	assert.InDelta(t, 9876.25, float64(e.Liquidity), 0.001, "string-encoded numbers decode too")
	assert.True(t, bool(e.Active), "string-encoded bools decode too")
}

func TestGetTrendingEventsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGammaClient(srv.URL, "test-agent")
	_, err := client.GetTrendingEvents(context.Background(), 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDecodeStringArray(t *testing.T) {
	assert.Equal(t, []string{"Yes", "No"}, DecodeStringArray(`["Yes","No"]`))
	assert.Empty(t, DecodeStringArray(""))
	assert.Empty(t, DecodeStringArray("not json"))
	assert.Empty(t, DecodeStringArray(`{"wrong":"shape"}`))
}
