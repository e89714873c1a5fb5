package adapter

import (
	"context"

	"github.com/prembandhan/matchclient/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_source_mock.go -package=mock

// ProfileSource defines transport-agnostic access to the remote profile API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ProfileSource interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token reverts the source to anonymous access.
	SetToken(token string)

	// Token returns the bearer token currently held by the source, or an
	// empty string if none has been set.
	Token() string

	// PublicProfiles fetches the unfiltered public listing. Works with or
	// without a token; with one, the response carries per-viewer isLiked
	// flags.
	PublicProfiles(ctx context.Context) ([]models.Profile, error)

	// FeaturedProfiles fetches the promoted subset used by the featured
	// view and the warm cache.
	FeaturedProfiles(ctx context.Context) ([]models.Profile, error)

	// SearchProfiles runs a server-side filtered search. The request query
	// string is exactly the filter codec's serialization minus the search
	// flag itself. Requires a bearer token; returns [ErrUnauthorized]
	// (wrapped) without one accepted by the server.
	SearchProfiles(ctx context.Context, f models.FilterState) ([]models.Profile, error)

	// GetProfile fetches a single full profile record by id.
	GetProfile(ctx context.Context, id int64) (models.Profile, error)

	// LikeProfile registers the viewer's interest in the profile id. The
	// server answers with a bare status: 200 means liked, 401 means the
	// token was rejected and maps to [ErrUnauthorized]; any other failure
	// is retryable.
	LikeProfile(ctx context.Context, id int64) error
}
