package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cerebrohq/cerebro/internal/core"
	"github.com/cerebrohq/cerebro/internal/domain"
)

// HTTPClient implements Client against a remote Cerebro server. It is used
// in monitor mode, where the refresh loop runs on the user's machine and the
// aggregation happens elsewhere.
type HTTPClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewHTTPClient creates an HTTPClient for the given server base URL, e.g.
// "http://localhost:8000".
func NewHTTPClient(baseURL, userAgent string) *HTTPClient {
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// News fetches one category from the remote server.
func (c *HTTPClient) News(ctx context.Context, category domain.Category) (core.NewsResponse, error) {
	var resp core.NewsResponse
	path := "/api/news?category=" + url.QueryEscape(string(category))
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return core.NewsResponse{}, fmt.Errorf("refresh: fetch news %s: %w", category, err)
	}
	return resp, nil
}

// Markets fetches the market stream from the remote server.
func (c *HTTPClient) Markets(ctx context.Context) (core.MarketsResponse, error) {
	var resp core.MarketsResponse
	if err := c.getJSON(ctx, "/api/markets", &resp); err != nil {
		return core.MarketsResponse{}, fmt.Errorf("refresh: fetch markets: %w", err)
	}
	return resp, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
