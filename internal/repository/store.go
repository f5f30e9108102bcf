package repository

import "context"

// Repositories bundles the persistence ports backed by one connection or
// transaction, so a use case can run several repository calls atomically.
type Repositories struct {
	Articles   ArticleRepository
	Sources    SourceRepository
	Categories CategoryRepository
}

// Store hands out repositories and runs transactional work.
type Store interface {
	// Repos returns repositories bound to the connection pool, outside any
	// transaction.
	Repos() Repositories

	// WithinTx runs fn against repositories bound to one transaction,
	// committing when fn returns nil and rolling back otherwise.
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
