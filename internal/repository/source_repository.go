package repository

import (
	"context"

	"news-aggregator/internal/domain/entity"
)

type SourceRepository interface {
	// Get retrieves a source by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Source, error)
	// GetByName retrieves a source by exact name match.
	// Returns (nil, nil) if not found.
	GetByName(ctx context.Context, name string) (*entity.Source, error)
	List(ctx context.Context) ([]*entity.Source, error)
	// Create inserts a new source and populates its ID. Returns
	// entity.ErrAlreadyExists when the name is already taken, so callers can
	// re-lookup after losing a create race.
	Create(ctx context.Context, source *entity.Source) error
}

type CategoryRepository interface {
	// Get retrieves a category by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Category, error)
	// GetByName retrieves a category by exact name match.
	// Returns (nil, nil) if not found.
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	// Create inserts a new category and populates its ID. Returns
	// entity.ErrAlreadyExists when the name is already taken.
	Create(ctx context.Context, category *entity.Category) error
}
