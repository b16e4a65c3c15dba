// Package markets fetches prediction-market events and filters them down to
// the ones relevant to geopolitics.
package markets

import (
	"context"
	"log/slog"

	"github.com/cerebrohq/cerebro/internal/domain"
	"github.com/cerebrohq/cerebro/internal/platform/polymarket"
)

// EventClient fetches trending events. Implemented by *polymarket.GammaClient.
type EventClient interface {
	GetTrendingEvents(ctx context.Context, limit int) ([]polymarket.APIEvent, error)
}

// Service wraps the Gamma client with the relevance filter and the
// soft-failure policy: fetch or decode problems degrade to an empty result.
type Service struct {
	client      EventClient
	fetchLimit  int
	maxRelevant int
	logger      *slog.Logger
}

// NewService creates a market Service. fetchLimit bounds the upstream
// request; maxRelevant caps the filtered output.
func NewService(client EventClient, fetchLimit, maxRelevant int, logger *slog.Logger) *Service {
	return &Service{
		client:      client,
		fetchLimit:  fetchLimit,
		maxRelevant: maxRelevant,
		logger:      logger.With(slog.String("component", "markets")),
	}
}

// FetchRelevant returns the geopolitically relevant trending events, most
// traded first (the upstream request is already volume-sorted, and filtering
// preserves order). On any failure it logs and returns an empty slice.
func (s *Service) FetchRelevant(ctx context.Context) []domain.MarketEvent {
	apiEvents, err := s.client.GetTrendingEvents(ctx, s.fetchLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "market fetch failed",
			slog.String("error", err.Error()),
		)
		return []domain.MarketEvent{}
	}

	events := make([]domain.MarketEvent, 0, s.maxRelevant)
	for i := range apiEvents {
		e := &apiEvents[i]
		if !Relevant(e.Title) {
			continue
		}
		events = append(events, toDomain(e))
		if len(events) == s.maxRelevant {
			break
		}
	}
	return events
}

// toDomain converts an API event, decoding the nested JSON-encoded outcome
// fields. The two fields decode independently, but the parallel-array
// invariant holds: a length mismatch empties both rather than shipping a
// partial pairing.
func toDomain(e *polymarket.APIEvent) domain.MarketEvent {
	outcomes := polymarket.DecodeStringArray(e.Outcomes)
	prices := polymarket.DecodeStringArray(e.OutcomePrices)
	if len(outcomes) != len(prices) {
		outcomes = []string{}
		prices = []string{}
	}

	return domain.MarketEvent{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		Outcomes:      outcomes,
		OutcomePrices: prices,
		Volume:        float64(e.Volume),
		Liquidity:     float64(e.Liquidity),
		EndDate:       e.EndDate,
		Active:        bool(e.Active),
		Image:         e.Image,
	}
}
