package cache

import (
	"context"

	"github.com/prembandhan/matchclient/models"
)

// [ResultCache] stores the most recent featured-profiles result set with
// its write timestamp.
type ResultCache interface {
	// Read returns the cached result set if it is still fresh.
	// An entry older than the configured TTL is evicted on the spot and
	// reported as ErrCacheMiss.
	Read(ctx context.Context) ([]models.Profile, error)

	// ReadStale returns the cached result set regardless of age. Used as
	// a fallback when the network fetch fails.
	ReadStale(ctx context.Context) ([]models.Profile, error)

	// Write replaces the cached result set and stamps it with the current
	// time. Image URLs referenced by the profiles are pre-warmed in the
	// background; pre-warm failures never surface to the caller.
	Write(ctx context.Context, profiles []models.Profile) error

	// Clear removes the cached entry.
	Clear(ctx context.Context) error
}
