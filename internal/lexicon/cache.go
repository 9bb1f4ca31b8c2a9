package lexicon

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Loader builds a Store. Loaders are expected to be idempotent.
type Loader func(ctx context.Context) (*Store, error)

// FileLoader returns a Loader that reads the dictionary at path.
func FileLoader(path string, opts ...Option) Loader {
	return func(ctx context.Context) (*Store, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Load(path, opts...)
	}
}

// Cache builds its Store lazily on first use and serves it for the rest of
// the process. Concurrent first callers share a single build; the Store is
// published only once it is complete and is never replaced afterwards.
// A failed build is not remembered, so the next call tries again.
type Cache struct {
	load  Loader
	group singleflight.Group
	store atomic.Pointer[Store]
}

// NewCache creates a Cache around load.
func NewCache(load Loader) *Cache {
	return &Cache{load: load}
}

// Store returns the cached Store, building it if necessary.
func (c *Cache) Store(ctx context.Context) (*Store, error) {
	if s := c.store.Load(); s != nil {
		return s, nil
	}

	v, err, _ := c.group.Do("store", func() (any, error) {
		if s := c.store.Load(); s != nil {
			return s, nil
		}
		s, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.store.CompareAndSwap(nil, s)
		return c.store.Load(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil
}

// Loaded reports whether the Store has been published.
func (c *Cache) Loaded() bool {
	return c.store.Load() != nil
}

// Reloader builds a fresh Store on every call. It trades load cost for
// never holding dictionary state between invocations.
type Reloader struct {
	load Loader
}

// NewReloader creates a Reloader around load.
func NewReloader(load Loader) *Reloader {
	return &Reloader{load: load}
}

// Store builds and returns a new Store.
func (r *Reloader) Store(ctx context.Context) (*Store, error) {
	return r.load(ctx)
}
