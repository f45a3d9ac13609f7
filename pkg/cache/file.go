package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache keeps one file per entry, named <hash>.<ext>, so a cache
// directory can be inspected with regular tools. Content addressing makes
// entries immutable; Set ignores ttl.
type FileCache struct {
	dir string
	ext string
}

// NewFileCache creates a file cache in dir.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, ext: "bin"}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return os.WriteFile(c.path(key), data, 0644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for a file cache.
func (c *FileCache) Close() error { return nil }

// Stats reports the number of entries and their total size in bytes,
// across every render kind sharing the directory.
func (c *FileCache) Stats() (int, int64, error) {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}

	var count int
	var size int64
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Entry removed between the listing and the stat.
			continue
		}
		count++
		size += info.Size()
	}
	return count, size, nil
}

// Clear removes every entry, leaving the directory in place.
func (c *FileCache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// path converts a cache key to a content-addressed file path.
func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, Hash([]byte(key))+"."+c.ext)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
