// Package gnews implements the client for the GNews HTTP API, the upstream
// provider articles are ingested from.
package gnews

import (
	"fmt"
	"time"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/pkg/config"
)

const (
	defaultBaseURL     = "https://gnews.io/api/v4/"
	defaultLanguage    = "en"
	defaultHTTPTimeout = 10 * time.Second

	// The free tier allows roughly 1 request/second; stay under it.
	defaultRequestsPerSecond = 1.0
	defaultBurst             = 1
)

// Config holds the configuration for the GNews API client.
type Config struct {
	// BaseURL is the API root, ending with a slash.
	BaseURL string

	// APIKey authenticates requests. Required.
	APIKey string

	// Language restricts results, passed as the lang query parameter.
	Language string

	// HTTPTimeout is the per-request timeout.
	HTTPTimeout time.Duration

	// RequestsPerSecond throttles outgoing calls to stay under the
	// provider's quota.
	RequestsPerSecond float64

	// Burst is the rate limiter burst size.
	Burst int
}

// LoadConfigFromEnv loads the client configuration from environment variables.
//
// Environment variables:
//   - GNEWS_BASE_URL: API root URL (default: https://gnews.io/api/v4/)
//   - GNEWS_API_KEY: API key (required)
//   - GNEWS_LANGUAGE: result language (default: en)
//   - GNEWS_HTTP_TIMEOUT: per-request timeout (default: 10s)
//   - GNEWS_REQUESTS_PER_SECOND: client-side throttle (default: 1)
func LoadConfigFromEnv() Config {
	return Config{
		BaseURL:           config.GetEnvString("GNEWS_BASE_URL", defaultBaseURL),
		APIKey:            config.GetEnvString("GNEWS_API_KEY", ""),
		Language:          config.GetEnvString("GNEWS_LANGUAGE", defaultLanguage),
		HTTPTimeout:       config.GetEnvDuration("GNEWS_HTTP_TIMEOUT", defaultHTTPTimeout),
		RequestsPerSecond: float64(config.GetEnvInt("GNEWS_REQUESTS_PER_SECOND", 1)),
		Burst:             defaultBurst,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GNEWS_API_KEY is required")
	}
	if err := entity.ValidateURL(c.BaseURL); err != nil {
		return fmt.Errorf("invalid GNEWS_BASE_URL: %w", err)
	}
	if err := config.ValidatePositiveDuration(c.HTTPTimeout); err != nil {
		return fmt.Errorf("invalid GNEWS_HTTP_TIMEOUT: %w", err)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("GNEWS_REQUESTS_PER_SECOND must be positive, got %v", c.RequestsPerSecond)
	}
	return nil
}
