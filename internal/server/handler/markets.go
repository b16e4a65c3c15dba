package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cerebrohq/cerebro/internal/core"
)

// MarketService defines what the markets handler needs from the core.
type MarketService interface {
	Markets(ctx context.Context) (core.MarketsResponse, error)
}

// MarketsHandler serves the prediction-market endpoint.
type MarketsHandler struct {
	markets     MarketService
	cacheMaxAge int
	logger      *slog.Logger
}

// NewMarketsHandler creates a MarketsHandler.
func NewMarketsHandler(markets MarketService, cacheMaxAge int, logger *slog.Logger) *MarketsHandler {
	return &MarketsHandler{
		markets:     markets,
		cacheMaxAge: cacheMaxAge,
		logger:      logger,
	}
}

// GetMarkets returns the geopolitically relevant market events. Upstream
// failures have already degraded to an empty list, so this cannot fail.
// GET /api/markets
func (h *MarketsHandler) GetMarkets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.markets.Markets(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "handler: markets fetch failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to fetch markets")
		return
	}

	setCacheHeader(w, h.cacheMaxAge)
	writeJSON(w, http.StatusOK, resp)
}
