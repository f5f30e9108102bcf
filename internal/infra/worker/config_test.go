package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "0 * * * *", cfg.CronSchedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "latest", cfg.Query)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 1, cfg.MaxPages)
	assert.Equal(t, 10*time.Minute, cfg.RunTimeout)
	assert.Equal(t, 9091, cfg.HealthPort)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid custom config",
			mutate: func(c *Config) { c.CronSchedule = "*/30 * * * *"; c.Timezone = "Asia/Tokyo" },
		},
		{
			name:    "invalid cron expression",
			mutate:  func(c *Config) { c.CronSchedule = "not a cron" },
			wantErr: "cron schedule",
		},
		{
			name:    "invalid timezone",
			mutate:  func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr: "timezone",
		},
		{
			name:    "empty query",
			mutate:  func(c *Config) { c.Query = "" },
			wantErr: "query",
		},
		{
			name:    "page size too large",
			mutate:  func(c *Config) { c.PageSize = 500 },
			wantErr: "page size",
		},
		{
			name:    "zero max pages",
			mutate:  func(c *Config) { c.MaxPages = 0 },
			wantErr: "max pages",
		},
		{
			name:    "negative run timeout",
			mutate:  func(c *Config) { c.RunTimeout = -time.Minute },
			wantErr: "run timeout",
		},
		{
			name:    "privileged health port",
			mutate:  func(c *Config) { c.HealthPort = 80 },
			wantErr: "health port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CronSchedule = "bad"
	cfg.Timezone = "Nowhere"
	cfg.PageSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	// 複数フィールドのエラーをまとめて報告する
	assert.Contains(t, err.Error(), "cron schedule")
	assert.Contains(t, err.Error(), "timezone")
	assert.Contains(t, err.Error(), "page size")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WORKER_CRON_SCHEDULE", "15 2 * * *")
	t.Setenv("WORKER_TIMEZONE", "Asia/Tokyo")
	t.Setenv("INGEST_QUERY", "technology")
	t.Setenv("INGEST_PAGE_SIZE", "25")
	t.Setenv("INGEST_MAX_PAGES", "3")
	t.Setenv("INGEST_RUN_TIMEOUT", "20m")
	t.Setenv("WORKER_HEALTH_PORT", "9191")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, "15 2 * * *", cfg.CronSchedule)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, "technology", cfg.Query)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 3, cfg.MaxPages)
	assert.Equal(t, 20*time.Minute, cfg.RunTimeout)
	assert.Equal(t, 9191, cfg.HealthPort)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Location(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "Asia/Tokyo"

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}
