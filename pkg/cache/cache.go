// Package cache stores rendered previews between runs so repeated
// invocations skip the raster work.
//
// Entries are content addressed: the key is a hash of the artifact bytes
// and the render options, so a stale entry cannot exist. [FileCache] keeps
// each entry as a plain file, readable in place; [NullCache] stands in
// when caching is turned off.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores rendered bytes under opaque string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Lookup returns the cached bytes for key, or ErrMiss when absent.
func Lookup(ctx context.Context, c Cache, key string) ([]byte, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMiss
	}
	return data, nil
}

// Dir returns the default preview cache directory. When the platform has
// no user cache directory the error wraps ErrDisabled and callers should
// fall back to a NullCache.
func Dir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDisabled, err)
	}
	return filepath.Join(base, "slotforge", "previews"), nil
}
