package service

import (
	"context"
	"time"

	"github.com/prembandhan/matchclient/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// BrowseService defines the client-side contract for fetching the profile
// listing that the browse view renders.
type BrowseService interface {
	// Browse fetches profiles for the given filter state. When the search
	// flag is set and a live token is present the filtering happens on the
	// server and only the client-side-only criteria (free-text term,
	// occupation) are re-applied locally; otherwise
	// the public listing is fetched and the whole filter set is evaluated
	// client-side.
	//
	// Every call supersedes the previous one: if a newer Browse starts
	// while this one is in flight, the older result is discarded and
	// reported as ErrSuperseded. An empty result set is not an error.
	Browse(ctx context.Context, f models.FilterState) ([]models.Profile, error)

	// Profile fetches one full profile record for the detail view.
	Profile(ctx context.Context, id int64) (models.Profile, error)
}

// FeaturedService defines the contract for the featured-profiles view
// backed by the local result cache.
type FeaturedService interface {
	// Featured returns the featured set, preferring a fresh cache entry
	// over a network fetch. When the fetch fails, an expired cache entry
	// is returned as a degraded fallback; the error is surfaced only when
	// there is nothing at all to show.
	Featured(ctx context.Context) ([]models.Profile, error)

	// Refresh bypasses the cache: it fetches the featured set from the
	// network and rewrites the cache entry on success.
	Refresh(ctx context.Context) ([]models.Profile, error)
}

// LikeService defines the contract for expressing interest in a profile.
type LikeService interface {
	// Like registers interest in the given profile and returns the updated
	// record with IsLiked set. It refuses to fire without a live token
	// (ErrAuthRequired), when the profile is already liked
	// (ErrAlreadyLiked), or while a like for the same profile is still in
	// flight (ErrLikeInFlight). A rejected token maps to ErrAuthRequired;
	// any other failure leaves the profile unliked and is retryable.
	Like(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// FavoritesService defines read access to locally saved liked profiles.
type FavoritesService interface {
	// List returns the saved favorites, most recently liked first.
	List(ctx context.Context) ([]models.Profile, error)

	// Remove deletes a favorite snapshot.
	Remove(ctx context.Context, profileID int64) error

	// Saved reports whether a local snapshot exists for the profile.
	Saved(ctx context.Context, profileID int64) (bool, error)
}

// RefreshJob defines the contract for the background worker that keeps the
// featured cache warm.
type RefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
