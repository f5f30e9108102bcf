// Package article provides use cases for querying article entities.
// It implements the search contract: optional filters, resolution of
// category/source references, pagination and sorting.
package article

import (
	"errors"
	"fmt"

	"news-aggregator/internal/domain/entity"
)

// Sentinel errors for article use case operations. The not-found sentinels
// wrap entity.ErrNotFound so callers can match on the domain sentinel.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = fmt.Errorf("article %w", entity.ErrNotFound)

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrCategoryNotFound indicates that a categoryId filter referenced a
	// category that does not exist. Distinct from an empty result page.
	ErrCategoryNotFound = fmt.Errorf("category %w", entity.ErrNotFound)

	// ErrSourceNotFound indicates that a sourceId filter referenced a
	// source that does not exist. Distinct from an empty result page.
	ErrSourceNotFound = fmt.Errorf("source %w", entity.ErrNotFound)

	// ErrInvalidDateRange indicates that startDate is after endDate.
	ErrInvalidDateRange = errors.New("startDate must not be after endDate")

	// ErrInvalidSort indicates an unsupported sortBy or sortDir value.
	ErrInvalidSort = errors.New("unsupported sort parameter")
)
