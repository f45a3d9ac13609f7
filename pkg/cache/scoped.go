package cache

import (
	"context"
	"time"
)

// Scoped derives a cache for one render kind (svg, png, thumb). A file
// cache keeps the kind as the entry extension, so one directory holds all
// kinds side by side; any other cache gets the kind prefixed to its keys.
func Scoped(c Cache, kind string) Cache {
	if fc, ok := c.(*FileCache); ok {
		return &FileCache{dir: fc.dir, ext: kind}
	}
	return &scopedCache{inner: c, kind: kind}
}

type scopedCache struct {
	inner Cache
	kind  string
}

func (s *scopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.kind+":"+key)
}

func (s *scopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.kind+":"+key, data, ttl)
}

func (s *scopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.kind+":"+key)
}

func (s *scopedCache) Close() error { return s.inner.Close() }

// Ensure scopedCache implements Cache.
var _ Cache = (*scopedCache)(nil)
