package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/category"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"golang.org/x/sync/singleflight"
)

// CategoryAPI is the part of Client used by CategoryStore.
type CategoryAPI interface {
	Categories(ctx context.Context) ([]*dto.CategoryRead, error)
	SeedCategories(ctx context.Context) ([]*dto.CategoryRead, error)
	CreateCategory(ctx context.Context, in NewCategory) (*dto.CategoryRead, error)
}

// CategoryStore caches the signed-in user's categories.
type CategoryStore struct {
	api    CategoryAPI
	flight singleflight.Group

	mu         sync.RWMutex
	categories []*dto.CategoryRead
	loading    bool
	err        error
}

func NewCategoryStore(api CategoryAPI) *CategoryStore {
	return &CategoryStore{api: api}
}

// Load fetches the categories. A user without any gets the default set
// created first. Concurrent calls share one fetch.
func (s *CategoryStore) Load(ctx context.Context) error {
	s.setLoading()
	v, err, _ := s.flight.Do("load", func() (any, error) {
		return s.fetch(ctx)
	})
	list, _ := v.([]*dto.CategoryRead)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
	if err == nil {
		s.categories = list
	}
	return err
}

func (s *CategoryStore) fetch(ctx context.Context) ([]*dto.CategoryRead, error) {
	list, err := s.api.Categories(ctx)
	if err != nil || len(list) > 0 {
		return list, err
	}
	if _, err := s.api.SeedCategories(ctx); err != nil {
		return nil, err
	}
	return s.api.Categories(ctx)
}

// Create adds a category and appends it to the cache. A duplicate name
// yields category.ErrCategoryExists.
func (s *CategoryStore) Create(ctx context.Context, name string, kind domain.EntryType) (*dto.CategoryRead, error) {
	created, err := s.api.CreateCategory(ctx, NewCategory{
		Name: strings.TrimSpace(name),
		Type: string(kind),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			err = category.ErrCategoryExists
		}
		s.setErr(err)
		return nil, err
	}
	s.mu.Lock()
	s.categories = append(s.categories, created)
	s.err = nil
	s.mu.Unlock()
	return created, nil
}

// All returns a copy of the cached categories.
func (s *CategoryStore) All() []*dto.CategoryRead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*dto.CategoryRead, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CategoryStore) ByType(kind domain.EntryType) []*dto.CategoryRead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*dto.CategoryRead
	for _, c := range s.categories {
		if c.Type == kind {
			out = append(out, c)
		}
	}
	return out
}

func (s *CategoryStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error of the last failed operation, or nil.
func (s *CategoryStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *CategoryStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *CategoryStore) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
