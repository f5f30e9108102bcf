package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	hhttp "news-aggregator/internal/handler/http"
	"news-aggregator/internal/handler/http/respond"
	pgRepo "news-aggregator/internal/infra/adapter/persistence/postgres"
	"news-aggregator/internal/infra/db"
	"news-aggregator/internal/infra/gnews"
	workerPkg "news-aggregator/internal/infra/worker"
	"news-aggregator/internal/observability/logging"
	"news-aggregator/internal/usecase/ingest"
	"news-aggregator/pkg/config"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerConfig := workerPkg.LoadConfigFromEnv()
	if err := workerConfig.Validate(); err != nil {
		logger.Error("invalid worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.String("query", workerConfig.Query),
		slog.Int("page_size", workerConfig.PageSize),
		slog.Int("max_pages", workerConfig.MaxPages),
		slog.Duration("run_timeout", workerConfig.RunTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	svc := setupIngestService(logger, database, workerConfig)
	workerMetrics := workerPkg.NewMetrics()

	// Start health check and metrics server
	var metricsHandler http.Handler
	if config.GetEnvBool("WORKER_METRICS_ENABLED", true) {
		metricsHandler = hhttp.MetricsHandler()
	}
	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, metricsHandler, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	startCronWorker(ctx, logger, svc, workerConfig, workerMetrics, healthServer)
}

// initDatabase opens the database connection and runs migrations.
// The worker and the API share the same schema; running the migrations here
// too keeps the worker usable standalone.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupIngestService creates the ingestion service with all its dependencies.
func setupIngestService(logger *slog.Logger, database *sql.DB, cfg workerPkg.Config) *ingest.Service {
	feedConfig := gnews.LoadConfigFromEnv()
	if err := feedConfig.Validate(); err != nil {
		logger.Error("invalid feed client configuration", slog.Any("error", err))
		os.Exit(1)
	}

	client := gnews.NewClient(feedConfig)
	store := pgRepo.NewStore(database)

	return ingest.NewService(client, store, ingest.Config{
		Query:    cfg.Query,
		PageSize: cfg.PageSize,
		MaxPages: cfg.MaxPages,
	})
}

// startCronWorker schedules the ingestion job and blocks until the context
// is cancelled. Overlapping runs are skipped, not queued: a tick that fires
// while a run is still in progress is dropped.
func startCronWorker(ctx context.Context, logger *slog.Logger, svc *ingest.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics, healthServer *workerPkg.HealthServer) {
	loc, err := cfg.Location()
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	// 実行中のジョブがあればスキップ（多重起動防止）
	running := make(chan struct{}, 1)
	_, err = c.AddFunc(cfg.CronSchedule, func() {
		select {
		case running <- struct{}{}:
			defer func() { <-running }()
			runIngestJob(ctx, logger, svc, cfg, metrics)
		default:
			logger.Warn("previous ingestion run still in progress, skipping tick")
		}
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	// Mark as ready after cron is set up
	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)

	// 実行中のジョブが終わるまで待つ
	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info("worker stopped")
}

// runIngestJob executes one ingestion run under the configured timeout and
// records the job metrics.
func runIngestJob(ctx context.Context, logger *slog.Logger, svc *ingest.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics) {
	startTime := time.Now()
	logger.Info("ingestion run started")

	runCtx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer cancel()

	stats, err := svc.Run(runCtx)
	metrics.RecordJobDuration(time.Since(startTime).Seconds())
	if err != nil {
		// 機密情報をマスクしてログ出力
		logger.Error("ingestion run failed", slog.String("error", respond.SanitizeError(err)))
		metrics.RecordJobRun("failure")
		return
	}

	metrics.RecordJobRun("success")
	metrics.RecordArticlesProcessed(int(stats.Fetched))
	metrics.RecordLastSuccess()

	logger.Info("ingestion run completed",
		slog.Int("pages", stats.Pages),
		slog.Int("page_errors", stats.PageErrors),
		slog.Int64("fetched", stats.Fetched),
		slog.Int64("rejected", stats.Rejected),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("failed", stats.Failed),
		slog.Duration("duration", stats.Duration),
	)
}
