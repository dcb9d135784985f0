package blob

import (
	"context"

	"warehouse.GO/core/cache"
)

// CacheBridge keeps blobs in process memory. Values are stored as strings so
// a cache dumped with DumpToFile restores to the same bytes.
type CacheBridge struct {
	c      *cache.Cache
	prefix string
}

func NewCacheBridge(c *cache.Cache, prefix string) *CacheBridge {
	return &CacheBridge{c: c, prefix: prefix}
}

func (b *CacheBridge) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := b.c.Get(b.prefix + key)
	if !ok {
		return nil, ErrNotFound
	}
	switch x := v.(type) {
	case []byte:
		return append([]byte(nil), x...), nil
	case string:
		return []byte(x), nil
	}
	return nil, ErrNotFound
}

func (b *CacheBridge) Set(_ context.Context, key string, value []byte) error {
	b.c.Set(b.prefix+key, string(value), 0, []string{"blob"})
	return nil
}

func (b *CacheBridge) Remove(_ context.Context, key string) error {
	b.c.Delete(b.prefix + key)
	return nil
}
