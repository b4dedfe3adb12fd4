package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loader is a store that can be filled from the API.
type Loader interface {
	Load(ctx context.Context) error
}

// LoadAll loads the stores concurrently and returns the first error.
func LoadAll(ctx context.Context, stores ...Loader) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range stores {
		g.Go(func() error { return s.Load(ctx) })
	}
	return g.Wait()
}
