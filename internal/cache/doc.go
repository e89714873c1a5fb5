// Package cache persists fetched profile result sets on the local
// filesystem so the browse view can render instantly on startup and
// survive short API outages. Entries carry their write timestamp and are
// evicted lazily when read after the freshness window has passed.
package cache
