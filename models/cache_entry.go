package models

import "time"

// CacheEntry is the persisted shape of a cached profile result set:
// a data slice plus the write timestamp in epoch milliseconds, JSON-encoded
// under a fixed cache key. Only one cached result set exists at a time
// (the featured profiles).
type CacheEntry struct {
	Data      []Profile `json:"data"`
	Timestamp int64     `json:"timestamp"`
}

// WrittenAt returns the entry's write time.
func (e CacheEntry) WrittenAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Age returns how old the entry is relative to now.
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.WrittenAt())
}
