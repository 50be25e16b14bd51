package artifact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acikdeniz/credits/internal/app"
	lru "github.com/hashicorp/golang-lru"
)

// CachedLoader wraps an artifact loader with a ttl'd caching layer, keyed by
// the artifact source, so repeated footer renders don't hit the source on
// every page view.
type CachedLoader struct {
	loader app.ArtifactLoader
	key    string
	cache  *lru.Cache
	ttl    time.Duration
}

// NewCachedLoader creates new CachedLoader instance.
// key identifies the artifact source (base url or file path).
func NewCachedLoader(loader app.ArtifactLoader, key string, size int, ttl time.Duration) (*CachedLoader, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for artifacts: %w", err)
	}

	return &CachedLoader{
		loader: loader,
		key:    key,
		cache:  cache,
		ttl:    ttl,
	}, nil
}

// Load returns the contributor list, from cache when a fresh entry exists.
// Loader errors are not cached.
func (l *CachedLoader) Load(ctx context.Context) ([]app.Contributor, error) {
	val, ok := l.cache.Get(l.key)
	if ok {
		entry := val.(cacheEntry)
		if entry.created.Add(l.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	contributors, err := l.loader.Load(ctx)
	if err != nil {
		return contributors, err
	}

	l.cache.Add(l.key, cacheEntry{
		created: time.Now(),
		data:    contributors,
	})

	return contributors, nil
}

type cacheEntry struct {
	created time.Time
	data    []app.Contributor
}
