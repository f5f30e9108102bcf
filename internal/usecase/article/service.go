package article

import (
	"context"
	"fmt"
	"time"

	"news-aggregator/internal/common/pagination"
	"news-aggregator/internal/repository"
)

// sortColumns maps API sortBy values to repository sort columns.
var sortColumns = map[string]string{
	"publishedAt": "published_at",
	"createdAt":   "created_at",
	"title":       "title",
	"id":          "id",
}

// SearchInput carries the optional filters and paging for a search.
// Nil filter fields contribute no predicate.
type SearchInput struct {
	Keyword    *string
	CategoryID *int64
	SourceID   *int64
	StartDate  *time.Time
	EndDate    *time.Time

	Page    pagination.Params
	SortBy  string // publishedAt, createdAt, title, id; default publishedAt
	SortDir string // asc or desc; default desc
}

// PageResult is one page of search results with its pagination metadata.
type PageResult struct {
	Articles []repository.ArticleWithRefs
	Metadata pagination.Metadata
}

// Service provides article query use cases.
type Service struct {
	Articles   repository.ArticleRepository
	Sources    repository.SourceRepository
	Categories repository.CategoryRepository
}

// Get retrieves a single article with its source and category names.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithRefs, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Articles.GetWithRefs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Search finds articles matching the input's filters, paginated and sorted.
// An unknown CategoryID or SourceID resolves before any article query and
// surfaces ErrCategoryNotFound / ErrSourceNotFound; an empty page with a
// valid reference is a normal result. No filters at all returns all
// articles.
func (s *Service) Search(ctx context.Context, input SearchInput) (*PageResult, error) {
	if input.StartDate != nil && input.EndDate != nil && input.StartDate.After(*input.EndDate) {
		return nil, ErrInvalidDateRange
	}

	sort, err := resolveSort(input.SortBy, input.SortDir)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := s.Categories.Get(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}
	if input.SourceID != nil {
		source, err := s.Sources.Get(ctx, *input.SourceID)
		if err != nil {
			return nil, fmt.Errorf("resolve source: %w", err)
		}
		if source == nil {
			return nil, ErrSourceNotFound
		}
	}

	filters := repository.ArticleSearchFilters{
		Keyword:    input.Keyword,
		CategoryID: input.CategoryID,
		SourceID:   input.SourceID,
		From:       input.StartDate,
		To:         input.EndDate,
	}

	params := input.Page.WithDefaults(pagination.DefaultConfig())

	total, err := s.Articles.CountWithFilters(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Size)
	articles, err := s.Articles.SearchWithFilters(ctx, filters, sort, offset, params.Size)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}

	return &PageResult{
		Articles: articles,
		Metadata: pagination.NewMetadata(total, params.Page, params.Size),
	}, nil
}

// resolveSort maps API sort parameters to a repository sort, applying the
// publishedAt desc defaults.
func resolveSort(sortBy, sortDir string) (repository.ArticleSort, error) {
	if sortBy == "" {
		sortBy = "publishedAt"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return repository.ArticleSort{}, fmt.Errorf("%w: sortBy=%q", ErrInvalidSort, sortBy)
	}

	desc := true
	switch sortDir {
	case "", "desc":
	case "asc":
		desc = false
	default:
		return repository.ArticleSort{}, fmt.Errorf("%w: sortDir=%q", ErrInvalidSort, sortDir)
	}

	return repository.ArticleSort{Column: column, Desc: desc}, nil
}
