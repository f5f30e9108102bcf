package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"news-aggregator/internal/repository"
)

func newRepositories(db DBTX) repository.Repositories {
	return repository.Repositories{
		Articles:   NewArticleRepo(db),
		Sources:    NewSourceRepo(db),
		Categories: NewCategoryRepo(db),
	}
}

// Store implements repository.Store on top of *sql.DB.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Repos returns repositories bound to the connection pool, outside any
// transaction.
func (s *Store) Repos() repository.Repositories {
	return newRepositories(s.db)
}

// WithinTx runs fn against repositories bound to one transaction,
// committing when fn returns nil and rolling back otherwise.
func (s *Store) WithinTx(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("WithinTx: begin: %w", err)
	}

	if err := fn(newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("WithinTx: rollback: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("WithinTx: commit: %w", err)
	}
	return nil
}
