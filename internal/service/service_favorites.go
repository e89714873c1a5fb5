package service

import (
	"context"
	"fmt"

	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/store"
	"github.com/prembandhan/matchclient/models"
)

type favoritesService struct {
	favorites store.FavoriteRepository
	logger    *logger.Logger
}

func NewFavoritesService(favorites store.FavoriteRepository, log *logger.Logger) FavoritesService {
	return &favoritesService{
		favorites: favorites,
		logger:    log,
	}
}

func (s *favoritesService) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.favorites.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	if profiles == nil {
		profiles = []models.Profile{}
	}

	return profiles, nil
}

func (s *favoritesService) Remove(ctx context.Context, profileID int64) error {
	if err := s.favorites.RemoveFavorite(ctx, profileID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}

func (s *favoritesService) Saved(ctx context.Context, profileID int64) (bool, error) {
	saved, err := s.favorites.IsFavorite(ctx, profileID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	return saved, nil
}
