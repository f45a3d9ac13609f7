package cli

import (
	"github.com/slotforge/slotforge/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "slotforge"

// openCache returns the preview render cache. With noCache set, or when no
// cache directory is available on this system, rendering proceeds uncached.
func openCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.Dir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
