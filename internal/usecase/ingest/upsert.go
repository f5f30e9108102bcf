package ingest

import (
	"context"
	"errors"
	"fmt"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/internal/repository"
)

// UpsertOutcome is the result of attempting to store one article.
type UpsertOutcome int

const (
	// OutcomeInserted means the article was new and stored.
	OutcomeInserted UpsertOutcome = iota
	// OutcomeDuplicate means an article with the same URL already exists.
	OutcomeDuplicate
)

// Upserter stores normalized articles, creating their source and category
// rows on first sight. All writes for one article happen in one transaction.
type Upserter struct {
	Store repository.Store
}

// Upsert stores one article. Within a single transaction: a URL lookup
// shortcuts to Duplicate; then source and category are found or created by
// exact name; then the article row is inserted. The URL uniqueness
// constraint is the final arbiter: losing an insert race to a concurrent
// writer is a Duplicate outcome, not an error.
func (u *Upserter) Upsert(ctx context.Context, article *NormalizedArticle, categoryLabel string) (UpsertOutcome, error) {
	outcome := OutcomeInserted
	err := u.Store.WithinTx(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Articles.GetByURL(ctx, article.URL)
		if err != nil {
			return fmt.Errorf("lookup article by url: %w", err)
		}
		if existing != nil {
			outcome = OutcomeDuplicate
			return nil
		}

		source, err := findOrCreateSource(ctx, repos.Sources, article.SourceName)
		if err != nil {
			return fmt.Errorf("resolve source %q: %w", article.SourceName, err)
		}

		category, err := findOrCreateCategory(ctx, repos.Categories, categoryLabel)
		if err != nil {
			return fmt.Errorf("resolve category %q: %w", categoryLabel, err)
		}

		row := &entity.Article{
			SourceID:    source.ID,
			CategoryID:  category.ID,
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			ImageURL:    article.ImageURL,
			PublishedAt: article.PublishedAt,
		}
		if err := repos.Articles.Create(ctx, row); err != nil {
			if errors.Is(err, entity.ErrAlreadyExists) {
				// a concurrent writer won the race on this URL
				outcome = OutcomeDuplicate
				return nil
			}
			return fmt.Errorf("insert article: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return outcome, nil
}

// findOrCreateSource resolves a source by exact name, creating it with a
// null base URL on first sight. On a create conflict the winner's row is
// re-read; the name uniqueness constraint decides.
func findOrCreateSource(ctx context.Context, repo repository.SourceRepository, name string) (*entity.Source, error) {
	source, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if source != nil {
		return source, nil
	}

	source = &entity.Source{Name: name}
	err = repo.Create(ctx, source)
	if err == nil {
		return source, nil
	}
	if !errors.Is(err, entity.ErrAlreadyExists) {
		return nil, err
	}

	source, err = repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("source %q vanished after create conflict", name)
	}
	return source, nil
}

func findOrCreateCategory(ctx context.Context, repo repository.CategoryRepository, name string) (*entity.Category, error) {
	category, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	category = &entity.Category{Name: name}
	err = repo.Create(ctx, category)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, entity.ErrAlreadyExists) {
		return nil, err
	}

	category, err = repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %q vanished after create conflict", name)
	}
	return category, nil
}
