package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/mock"
	"github.com/prembandhan/matchclient/internal/store"
	"github.com/prembandhan/matchclient/models"
)

func TestFavoritesListEmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	favorites := mock.NewMockFavoriteRepository(ctrl)

	favorites.EXPECT().ListFavorites(gomock.Any()).Return(nil, nil)

	svc := NewFavoritesService(favorites, logger.Nop())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFavoritesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	favorites := mock.NewMockFavoriteRepository(ctrl)

	want := []models.Profile{{ID: 2, Name: "Rahul Verma"}, {ID: 1, Name: "Anita Joshi"}}
	favorites.EXPECT().ListFavorites(gomock.Any()).Return(want, nil)

	svc := NewFavoritesService(favorites, logger.Nop())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFavoritesRemoveNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	favorites := mock.NewMockFavoriteRepository(ctrl)

	favorites.EXPECT().RemoveFavorite(gomock.Any(), int64(42)).
		Return(store.ErrFavoriteNotFound)

	svc := NewFavoritesService(favorites, logger.Nop())

	err := svc.Remove(context.Background(), 42)
	require.ErrorIs(t, err, store.ErrFavoriteNotFound)
}

func TestFavoritesSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	favorites := mock.NewMockFavoriteRepository(ctrl)

	favorites.EXPECT().IsFavorite(gomock.Any(), int64(42)).Return(true, nil)
	favorites.EXPECT().IsFavorite(gomock.Any(), int64(7)).Return(false, nil)

	svc := NewFavoritesService(favorites, logger.Nop())

	saved, err := svc.Saved(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.Saved(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestFavoritesSavedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	favorites := mock.NewMockFavoriteRepository(ctrl)

	favorites.EXPECT().IsFavorite(gomock.Any(), int64(42)).
		Return(false, errors.New("database is locked"))

	svc := NewFavoritesService(favorites, logger.Nop())

	saved, err := svc.Saved(context.Background(), 42)
	require.Error(t, err)
	assert.False(t, saved)
}
