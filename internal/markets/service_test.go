package markets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebrohq/cerebro/internal/platform/polymarket"
)

type stubClient struct {
	events []polymarket.APIEvent
	err    error
}

func (s *stubClient) GetTrendingEvents(_ context.Context, _ int) ([]polymarket.APIEvent, error) {
	return s.events, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func apiEvent(id, title string) polymarket.APIEvent {
	return polymarket.APIEvent{
		ID:            id,
		Title:         title,
		Slug:          id,
		Outcomes:      `["Yes","No"]`,
		OutcomePrices: `["0.65","0.35"]`,
		Active:        true,
	}
}

func TestRelevant(t *testing.T) {
	assert.True(t, Relevant("Will Russia and Ukraine sign a ceasefire?"))
	assert.True(t, Relevant("NEW TARIFF announced"))
	assert.True(t, Relevant("Warsaw marathon winner")) // "war" substring, by design
	assert.False(t, Relevant("Super Bowl champion 2027"))
}

func TestFetchRelevantFiltersAndCaps(t *testing.T) {
	svc := NewService(&stubClient{events: []polymarket.APIEvent{
		apiEvent("1", "Russia-Ukraine ceasefire in 2026?"),
		apiEvent("2", "Next album of the year"),
		apiEvent("3", "Will OPEC cut oil production?"),
		apiEvent("4", "US election margin"),
	}}, 50, 2, testLogger())

	got := svc.FetchRelevant(context.Background())

	// Irrelevant events are dropped; the cap applies to the filtered list,
	// preserving upstream (volume-descending) order.
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFetchRelevantDecodesOutcomes(t *testing.T) {
	svc := NewService(&stubClient{events: []polymarket.APIEvent{
		apiEvent("1", "sanctions lifted?"),
	}}, 50, 20, testLogger())

	got := svc.FetchRelevant(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Yes", "No"}, got[0].Outcomes)
	assert.Equal(t, []string{"0.65", "0.35"}, got[0].OutcomePrices)
}

func TestFetchRelevantMalformedOutcomes(t *testing.T) {
	ev := apiEvent("1", "war risk index")
	ev.Outcomes = "not json"

	svc := NewService(&stubClient{events: []polymarket.APIEvent{ev}}, 50, 20, testLogger())

	got := svc.FetchRelevant(context.Background())
	require.Len(t, got, 1, "the event is kept even when its outcomes are malformed")
	assert.Empty(t, got[0].Outcomes)
	assert.Empty(t, got[0].OutcomePrices, "partial pairings are normalized to empty")
}

func TestFetchRelevantFetchFailure(t *testing.T) {
	svc := NewService(&stubClient{err: errors.New("gamma down")}, 50, 20, testLogger())

	got := svc.FetchRelevant(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
