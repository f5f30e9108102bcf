// Package worker provides the runtime scaffolding for the ingestion worker:
// configuration, a health probe server, and job-level metrics.
package worker

import (
	"fmt"
	"time"

	"news-aggregator/pkg/config"
)

// Config holds the configuration for the ingestion worker.
// It controls the cron schedule, timezone, the feed query parameters, and
// operational settings for the worker process.
//
// All fields have sensible defaults; Validate reports every invalid field at
// once rather than stopping at the first.
type Config struct {
	// CronSchedule is the cron expression for ingestion runs.
	// Format: "minute hour day month weekday"
	// Default: "0 * * * *" (every hour)
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	// Example: "Asia/Tokyo", "UTC", "America/New_York"
	// Default: "UTC"
	Timezone string

	// Query is the search query sent to the news provider.
	// Default: "latest"
	Query string

	// PageSize is the number of articles requested per provider page.
	// Range: 1-100 (provider limit)
	// Default: 10
	PageSize int

	// MaxPages is the number of provider pages fetched per run.
	// Range: 1-50
	// Default: 1
	MaxPages int

	// RunTimeout is the maximum duration for a single ingestion run.
	// After this timeout, the run context is cancelled.
	// Default: 10 minutes
	RunTimeout time.Duration

	// HealthPort is the port number for the health check HTTP server.
	// Range: 1024-65535 (avoid privileged ports)
	// Default: 9091
	HealthPort int
}

// DefaultConfig returns a Config with production-ready default values:
// hourly runs in UTC, one page of ten articles, a ten-minute run timeout.
func DefaultConfig() Config {
	return Config{
		CronSchedule: "0 * * * *",
		Timezone:     "UTC",
		Query:        "latest",
		PageSize:     10,
		MaxPages:     1,
		RunTimeout:   10 * time.Minute,
		HealthPort:   9091,
	}
}

// LoadConfigFromEnv loads the worker configuration from environment
// variables, starting from DefaultConfig for any unset value.
//
// Environment variables:
//   - WORKER_CRON_SCHEDULE: Cron expression (default: "0 * * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - INGEST_QUERY: Provider search query (default: "latest")
//   - INGEST_PAGE_SIZE: Articles per page (default: 10)
//   - INGEST_MAX_PAGES: Pages per run (default: 1)
//   - INGEST_RUN_TIMEOUT: Duration string, e.g. "10m" (default: 10 minutes)
//   - WORKER_HEALTH_PORT: Integer 1024-65535 (default: 9091)
//
// The returned config is not yet validated; call Validate before use.
func LoadConfigFromEnv() Config {
	def := DefaultConfig()
	return Config{
		CronSchedule: config.GetEnvString("WORKER_CRON_SCHEDULE", def.CronSchedule),
		Timezone:     config.GetEnvString("WORKER_TIMEZONE", def.Timezone),
		Query:        config.GetEnvString("INGEST_QUERY", def.Query),
		PageSize:     config.GetEnvInt("INGEST_PAGE_SIZE", def.PageSize),
		MaxPages:     config.GetEnvInt("INGEST_MAX_PAGES", def.MaxPages),
		RunTimeout:   config.GetEnvDuration("INGEST_RUN_TIMEOUT", def.RunTimeout),
		HealthPort:   config.GetEnvInt("WORKER_HEALTH_PORT", def.HealthPort),
	}
}

// Validate checks the configuration values. If multiple fields are invalid,
// all errors are collected and returned together.
//
// Validation rules:
//   - CronSchedule: must be a valid cron expression (robfig/cron parser)
//   - Timezone: must be a valid IANA timezone name (time.LoadLocation)
//   - Query: must not be empty
//   - PageSize: must be between 1 and 100
//   - MaxPages: must be between 1 and 50
//   - RunTimeout: must be positive
//   - HealthPort: must be between 1024 and 65535
func (c *Config) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if c.Query == "" {
		errs = append(errs, fmt.Errorf("query: must not be empty"))
	}
	if err := config.ValidateIntRange(c.PageSize, 1, 100); err != nil {
		errs = append(errs, fmt.Errorf("page size: %w", err))
	}
	if err := config.ValidateIntRange(c.MaxPages, 1, 50); err != nil {
		errs = append(errs, fmt.Errorf("max pages: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.RunTimeout); err != nil {
		errs = append(errs, fmt.Errorf("run timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// Location resolves the configured timezone. Validate must have passed.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
