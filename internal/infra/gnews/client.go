package gnews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"news-aggregator/internal/resilience/circuitbreaker"
)

// maxErrorBodySize bounds how much of an error response is kept for the
// error message.
const maxErrorBodySize = 512

// RawSource is the source object embedded in a GNews article.
type RawSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RawArticle is one article exactly as the provider returns it. No
// validation has happened yet; any field may be empty.
type RawArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	PublishedAt string    `json:"publishedAt"`
	Source      RawSource `json:"source"`
}

// FeedPage is one page of search results.
type FeedPage struct {
	TotalArticles int          `json:"totalArticles"`
	Articles      []RawArticle `json:"articles"`
}

// Client calls the GNews search endpoint. Calls are throttled client-side
// and routed through a circuit breaker so a broken provider fails fast
// instead of holding worker runs hostage.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	breaker *circuitbreaker.CircuitBreaker
}

// NewClient creates a GNews client from the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker: circuitbreaker.New(circuitbreaker.NewsAPIConfig()),
	}
}

// Fetch retrieves one page of search results for the query. Pages are
// 1-indexed on the provider side. A non-200 response is an error; the
// caller decides whether to continue with other pages.
func (c *Client) Fetch(ctx context.Context, query string, pageSize, page int) (*FeedPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("Fetch: rate limit wait: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, query, pageSize, page)
	})
	if err != nil {
		if c.breaker.IsOpen() {
			return nil, fmt.Errorf("Fetch: %s circuit open: %w", c.breaker.Name(), err)
		}
		return nil, err
	}
	return result.(*FeedPage), nil
}

func (c *Client) fetch(ctx context.Context, query string, pageSize, page int) (*FeedPage, error) {
	endpoint := c.cfg.BaseURL
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	endpoint += "search"

	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", c.cfg.Language)
	params.Set("max", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(page))
	params.Set("apikey", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("Fetch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("Fetch: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var feedPage FeedPage
	if err := json.NewDecoder(resp.Body).Decode(&feedPage); err != nil {
		return nil, fmt.Errorf("Fetch: decode response: %w", err)
	}
	return &feedPage, nil
}
