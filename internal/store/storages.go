package store

import (
	"github.com/prembandhan/matchclient/internal/logger"
)

// Storages aggregates all local persistence repositories.
type Storages struct {
	Favorites FavoriteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Favorites: NewFavoriteRepository(db, logger),
	}
}
