package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"news-aggregator/internal/common/pagination"
	hhttp "news-aggregator/internal/handler/http"
	harticle "news-aggregator/internal/handler/http/article"
	hcategory "news-aggregator/internal/handler/http/category"
	"news-aggregator/internal/handler/http/requestid"
	hsource "news-aggregator/internal/handler/http/source"
	pgRepo "news-aggregator/internal/infra/adapter/persistence/postgres"
	"news-aggregator/internal/infra/db"
	"news-aggregator/internal/observability/logging"
	"news-aggregator/internal/observability/metrics"
	artUC "news-aggregator/internal/usecase/article"
	catUC "news-aggregator/internal/usecase/category"
	srcUC "news-aggregator/internal/usecase/source"
	"news-aggregator/pkg/config"
)

func main() {
	// .env はローカル開発用。無ければ環境変数のみで動く
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, version)

	runServer(logger, handler, database, version)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the services, registers all routes, and returns the
// handler with the middleware chain applied.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	artSvc := &artUC.Service{
		Articles:   pgRepo.NewArticleRepo(database),
		Sources:    pgRepo.NewSourceRepo(database),
		Categories: pgRepo.NewCategoryRepo(database),
	}
	srcSvc := &srcUC.Service{Repo: pgRepo.NewSourceRepo(database)}
	catSvc := &catUC.Service{Repo: pgRepo.NewCategoryRepo(database)}

	paginationCfg := pagination.DefaultConfig()

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, paginationCfg)
	hsource.Register(mux, srcSvc)
	hcategory.Register(mux, catSvc)

	// ヘルスチェック・メトリクスエンドポイント
	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID, Recovery, Logging, Timeout, Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	requestTimeout := config.GetEnvDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second)

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.Metrics(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, database *sql.DB, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// コネクションプールの統計を定期的にエクスポート
	g.Go(func() error {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				metrics.UpdateDBStats(database.Stats())
			}
		}
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
