package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-aggregator/internal/infra/gnews"
	"news-aggregator/internal/observability/metrics"
	"news-aggregator/internal/repository"
)

// FeedClient fetches one page of raw records from the upstream provider.
type FeedClient interface {
	Fetch(ctx context.Context, query string, pageSize, page int) (*gnews.FeedPage, error)
}

// Config controls one ingestion run.
type Config struct {
	Query    string // search query sent to the provider
	PageSize int    // records per provider page
	MaxPages int    // pages fetched per run, 1-indexed inclusive
}

// Service orchestrates the ingestion pipeline: fetch pages, normalize and
// classify records, upsert articles.
type Service struct {
	Client   FeedClient
	Store    repository.Store
	Upserter *Upserter
	Config   Config
}

// NewService creates an ingestion service with the provided dependencies.
func NewService(client FeedClient, store repository.Store, cfg Config) *Service {
	return &Service{
		Client:   client,
		Store:    store,
		Upserter: &Upserter{Store: store},
		Config:   cfg,
	}
}

// RunStats contains counters for one ingestion run.
type RunStats struct {
	Pages      int   // pages successfully fetched
	PageErrors int   // pages that failed to fetch
	Fetched    int64 // raw records seen
	Rejected   int64 // records dropped by normalization
	Duplicated int64 // records already stored
	Inserted   int64 // new articles stored
	Failed     int64 // records that hit a persistence error
	Duration   time.Duration
}

// Run executes one ingestion run: pages 1..MaxPages are fetched in order,
// each fully processed before the next is requested. A failed page or a bad
// record is logged and counted, never fatal; the run only errors on context
// cancellation. Always returns the stats accumulated so far.
func (s *Service) Run(ctx context.Context) (*RunStats, error) {
	logger := slog.Default()
	start := time.Now()
	stats := &RunStats{}

	for page := 1; page <= s.Config.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("ingestion run aborted: %w", err)
		}

		feedPage, err := s.Client.Fetch(ctx, s.Config.Query, s.Config.PageSize, page)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				stats.Duration = time.Since(start)
				return stats, fmt.Errorf("ingestion run aborted: %w", err)
			}
			stats.PageErrors++
			metrics.RecordPageFetched(false)
			logger.Warn("failed to fetch page",
				slog.Int("page", page),
				slog.String("query", s.Config.Query),
				slog.Any("error", err))
			// Continue with remaining pages even if one fails
			continue
		}
		stats.Pages++
		metrics.RecordPageFetched(true)

		if err := s.processPage(ctx, page, feedPage, stats); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
	}

	stats.Duration = time.Since(start)
	metrics.RecordIngestRun(stats.Duration)
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

	return stats, nil
}

// processPage runs every record of one page through the pipeline. Returns
// an error only on context cancellation.
func (s *Service) processPage(ctx context.Context, page int, feedPage *gnews.FeedPage, stats *RunStats) error {
	logger := slog.Default()

	// 事前に全URLをバッチで存在チェック (N+1問題解消)
	urls := make([]string, 0, len(feedPage.Articles))
	for _, raw := range feedPage.Articles {
		if raw.URL != "" {
			urls = append(urls, raw.URL)
		}
	}
	existsMap, err := s.Store.Repos().Articles.ExistsByURLBatch(ctx, urls)
	if err != nil {
		logger.Warn("failed to batch check URLs, falling back to per-record checks",
			slog.Int("page", page),
			slog.Any("error", err))
		// the upsert transaction re-checks each URL anyway
		existsMap = map[string]bool{}
	}

	for _, raw := range feedPage.Articles {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("ingestion run aborted: %w", err)
		}
		stats.Fetched++

		normalized, err := Normalize(raw)
		if err != nil {
			stats.Rejected++
			metrics.RecordArticleOutcome("rejected")
			var rejection *RejectionError
			if errors.As(err, &rejection) {
				metrics.RecordRejection(rejection.Reason)
				logger.Warn("record rejected",
					slog.Int("page", page),
					slog.String("reason", rejection.Reason),
					slog.String("field", rejection.Field),
					slog.String("url", raw.URL))
			}
			continue
		}

		if existsMap[normalized.URL] {
			stats.Duplicated++
			metrics.RecordArticleOutcome("duplicated")
			continue
		}

		category := Classify(normalized.Title, normalized.Description)
		metrics.RecordArticleClassified(category)

		outcome, err := s.Upserter.Upsert(ctx, normalized, category)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("ingestion run aborted: %w", err)
			}
			stats.Failed++
			metrics.RecordArticleOutcome("failed")
			logger.Warn("failed to upsert article, skipping",
				slog.Int("page", page),
				slog.String("url", normalized.URL),
				slog.String("title", normalized.Title),
				slog.Any("error", err))
			continue
		}

		switch outcome {
		case OutcomeDuplicate:
			stats.Duplicated++
			metrics.RecordArticleOutcome("duplicated")
		default:
			stats.Inserted++
			metrics.RecordArticleOutcome("inserted")
		}
	}
	return nil
}
