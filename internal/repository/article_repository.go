// Package repository declares the persistence interfaces the use cases depend
// on. Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"news-aggregator/internal/domain/entity"
)

// ArticleWithRefs carries an article together with the resolved names of its
// source and category, as the read path returns them.
type ArticleWithRefs struct {
	Article      *entity.Article
	SourceName   string
	CategoryName string
}

// ArticleSearchFilters contains the optional filters for article search.
// A nil field contributes no predicate; present fields are AND-combined.
type ArticleSearchFilters struct {
	Keyword    *string    // Case-insensitive substring match on title OR description
	CategoryID *int64     // Filter by category
	SourceID   *int64     // Filter by source
	From       *time.Time // published_at >= From
	To         *time.Time // published_at <= To
}

// ArticleSort describes the ordering applied after filtering.
// Column must be one of the whitelisted sortable columns; the query builder
// rejects anything else.
type ArticleSort struct {
	Column string
	Desc   bool
}

type ArticleRepository interface {
	// Get retrieves an article by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetWithRefs retrieves an article by ID including its source and
	// category names. Returns (nil, nil) if not found.
	GetWithRefs(ctx context.Context, id int64) (*ArticleWithRefs, error)
	// GetByURL retrieves an article by its canonical URL, the natural
	// deduplication key. Returns (nil, nil) if not found.
	GetByURL(ctx context.Context, url string) (*entity.Article, error)
	// ExistsByURLBatch checks many URLs in one round trip so the ingestion
	// path can skip known duplicates without an N+1 query pattern.
	ExistsByURLBatch(ctx context.Context, urls []string) (map[string]bool, error)
	// Create inserts a new article and populates its ID and audit
	// timestamps. Returns entity.ErrAlreadyExists when an article with the
	// same URL is already stored; the database uniqueness constraint is the
	// authoritative arbiter.
	Create(ctx context.Context, article *entity.Article) error
	// CountWithFilters returns the number of articles matching the filters.
	CountWithFilters(ctx context.Context, filters ArticleSearchFilters) (int64, error)
	// SearchWithFilters returns one page of matching articles with their
	// source and category names, ordered by sort.
	SearchWithFilters(ctx context.Context, filters ArticleSearchFilters, sort ArticleSort, offset, limit int) ([]ArticleWithRefs, error)
}
