package store

import "errors"

var (
	// ErrFavoriteNotFound is returned when no snapshot exists for the
	// requested profile.
	ErrFavoriteNotFound = errors.New("favorite not found")
)
