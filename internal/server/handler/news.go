package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cerebrohq/cerebro/internal/core"
	"github.com/cerebrohq/cerebro/internal/domain"
)

// NewsService defines what the news handler needs from the core. Declared
// locally so the handler package does not depend on the concrete service
// implementation.
type NewsService interface {
	News(ctx context.Context, category domain.Category) (core.NewsResponse, error)
}

// NewsHandler serves the per-category news endpoint.
type NewsHandler struct {
	news        NewsService
	cacheMaxAge int
	logger      *slog.Logger
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(news NewsService, cacheMaxAge int, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{
		news:        news,
		cacheMaxAge: cacheMaxAge,
		logger:      logger,
	}
}

// GetNews returns the aggregated articles for one category; for intel the
// response also carries the conflicts-with-news view.
// GET /api/news?category=intel
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))

	resp, err := h.news.News(r.Context(), category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			writeError(w, http.StatusBadRequest, "Invalid category. Use: intel, finance, tech, or gov")
			return
		}
		h.logger.ErrorContext(r.Context(), "handler: news fetch failed",
			slog.String("category", string(category)),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to fetch news")
		return
	}

	setCacheHeader(w, h.cacheMaxAge)
	writeJSON(w, http.StatusOK, resp)
}
