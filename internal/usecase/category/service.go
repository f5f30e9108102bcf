// Package category provides read use cases for article categories.
package category

import (
	"context"
	"errors"
	"fmt"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/internal/repository"
)

// ErrCategoryNotFound indicates that the requested category was not found.
var ErrCategoryNotFound = errors.New("category not found")

// Service provides category query use cases.
type Service struct {
	Repo repository.CategoryRepository
}

// List retrieves all categories ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get retrieves a single category by its ID.
// Returns ErrCategoryNotFound if the category does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
