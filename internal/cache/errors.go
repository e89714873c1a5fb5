package cache

import "errors"

var (
	// ErrCacheMiss is returned when no fresh entry exists.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheCorrupted is returned when the entry on disk cannot be
	// decoded. The broken file is removed so the next write starts clean.
	ErrCacheCorrupted = errors.New("cache entry corrupted")
)
