package ingest_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"news-aggregator/internal/domain/entity"
	"news-aggregator/internal/repository"
)

/* ───────── モック実装 ───────── */

// fakeArticleRepo はArticleRepositoryのインメモリ実装
type fakeArticleRepo struct {
	mu        sync.Mutex
	byURL     map[string]*entity.Article
	nextID    int64
	createErr error // injected failure for Create
	batchErr  error // injected failure for ExistsByURLBatch

	// missLookupOnce makes the next GetByURL miss even when the row
	// exists, to simulate losing an insert race.
	missLookupOnce bool
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byURL: make(map[string]*entity.Article)}
}

func (f *fakeArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byURL {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeArticleRepo) GetWithRefs(_ context.Context, _ int64) (*repository.ArticleWithRefs, error) {
	return nil, nil
}

func (f *fakeArticleRepo) GetByURL(_ context.Context, url string) (*entity.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missLookupOnce {
		f.missLookupOnce = false
		return nil, nil
	}
	return f.byURL[url], nil
}

func (f *fakeArticleRepo) ExistsByURLBatch(_ context.Context, urls []string) (map[string]bool, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make(map[string]bool)
	for _, url := range urls {
		if _, ok := f.byURL[url]; ok {
			result[url] = true
		}
	}
	return result, nil
}

func (f *fakeArticleRepo) Create(_ context.Context, article *entity.Article) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byURL[article.URL]; ok {
		return fmt.Errorf("Create: url %q: %w", article.URL, entity.ErrAlreadyExists)
	}
	f.nextID++
	article.ID = f.nextID
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	f.byURL[article.URL] = article
	return nil
}

func (f *fakeArticleRepo) CountWithFilters(_ context.Context, _ repository.ArticleSearchFilters) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byURL)), nil
}

func (f *fakeArticleRepo) SearchWithFilters(_ context.Context, _ repository.ArticleSearchFilters, _ repository.ArticleSort, _, _ int) ([]repository.ArticleWithRefs, error) {
	return nil, nil
}

// fakeSourceRepo はSourceRepositoryのインメモリ実装
type fakeSourceRepo struct {
	mu       sync.Mutex
	byName   map[string]*entity.Source
	nextID   int64
	creates  int
	raceOnce bool // simulate losing one create race
}

func newFakeSourceRepo() *fakeSourceRepo {
	return &fakeSourceRepo{byName: make(map[string]*entity.Source)}
}

func (f *fakeSourceRepo) Get(_ context.Context, id int64) (*entity.Source, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.byName {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSourceRepo) GetByName(_ context.Context, name string) (*entity.Source, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byName[name], nil
}

func (f *fakeSourceRepo) List(_ context.Context) ([]*entity.Source, error) {
	return nil, nil
}

func (f *fakeSourceRepo) Create(_ context.Context, source *entity.Source) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.raceOnce {
		// another writer created the row between lookup and create
		f.raceOnce = false
		f.nextID++
		f.byName[source.Name] = &entity.Source{ID: f.nextID, Name: source.Name}
		return fmt.Errorf("Create: source %q: %w", source.Name, entity.ErrAlreadyExists)
	}
	if _, ok := f.byName[source.Name]; ok {
		return fmt.Errorf("Create: source %q: %w", source.Name, entity.ErrAlreadyExists)
	}
	f.nextID++
	source.ID = f.nextID
	f.byName[source.Name] = source
	return nil
}

// fakeCategoryRepo はCategoryRepositoryのインメモリ実装
type fakeCategoryRepo struct {
	mu     sync.Mutex
	byName map[string]*entity.Category
	nextID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byName: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) Get(_ context.Context, id int64) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byName {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byName[name], nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byName[category.Name]; ok {
		return fmt.Errorf("Create: category %q: %w", category.Name, entity.ErrAlreadyExists)
	}
	f.nextID++
	category.ID = f.nextID
	f.byName[category.Name] = category
	return nil
}

// fakeStore はrepository.Storeのインメモリ実装。トランザクションは
// 単に同じリポジトリで fn を実行する。
type fakeStore struct {
	articles   *fakeArticleRepo
	sources    *fakeSourceRepo
	categories *fakeCategoryRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		articles:   newFakeArticleRepo(),
		sources:    newFakeSourceRepo(),
		categories: newFakeCategoryRepo(),
	}
}

func (s *fakeStore) Repos() repository.Repositories {
	return repository.Repositories{
		Articles:   s.articles,
		Sources:    s.sources,
		Categories: s.categories,
	}
}

func (s *fakeStore) WithinTx(_ context.Context, fn func(repos repository.Repositories) error) error {
	return fn(s.Repos())
}
