package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrMiss is returned when a key has no cached entry.
	ErrMiss = errors.New("cache miss")

	// ErrDisabled is returned when caching is unavailable on this system.
	ErrDisabled = errors.New("cache disabled")
)
