package store

import (
	"context"

	"github.com/prembandhan/matchclient/models"
)

// [FavoriteRepository] persists snapshots of liked profiles.
type FavoriteRepository interface {
	// SaveFavorite stores (or refreshes) a snapshot of the given profile.
	SaveFavorite(ctx context.Context, profile models.Profile) error

	// RemoveFavorite deletes the snapshot for the given profile ID.
	// Removing an absent favorite returns ErrFavoriteNotFound.
	RemoveFavorite(ctx context.Context, profileID int64) error

	// ListFavorites returns all stored snapshots, most recently saved first.
	ListFavorites(ctx context.Context) ([]models.Profile, error)

	// IsFavorite reports whether a snapshot exists for the given profile ID.
	IsFavorite(ctx context.Context, profileID int64) (bool, error)
}
