// Package source provides read use cases for news sources.
package source

import (
	"context"
	"errors"
	"fmt"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/internal/repository"
)

// ErrSourceNotFound indicates that the requested source was not found.
var ErrSourceNotFound = errors.New("source not found")

// Service provides source query use cases.
type Service struct {
	Repo repository.SourceRepository
}

// List retrieves all sources ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.Source, error) {
	sources, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Get retrieves a single source by its ID.
// Returns ErrSourceNotFound if the source does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Source, error) {
	source, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	if source == nil {
		return nil, ErrSourceNotFound
	}
	return source, nil
}
