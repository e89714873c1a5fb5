// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prembandhan/matchclient/internal/adapter"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/mock"
	"github.com/prembandhan/matchclient/models"
)

type likeMocks struct {
	source    *mock.MockProfileSource
	session   *mock.MockSession
	favorites *mock.MockFavoriteRepository
}

func newLikeService(t *testing.T) (LikeService, likeMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := likeMocks{
		source:    mock.NewMockProfileSource(ctrl),
		session:   mock.NewMockSession(ctrl),
		favorites: mock.NewMockFavoriteRepository(ctrl),
	}

	return NewLikeService(m.source, m.session, m.favorites, logger.Nop()), m
}

func TestLikeSuccess(t *testing.T) {
	svc, m := newLikeService(t)

	profile := models.Profile{ID: 42, Name: "Priya Sharma"}
	liked := profile
	liked.IsLiked = true

	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)
	m.source.EXPECT().LikeProfile(gomock.Any(), int64(42)).Return(nil)
	m.favorites.EXPECT().SaveFavorite(gomock.Any(), liked).Return(nil)

	got, err := svc.Like(context.Background(), profile)
	require.NoError(t, err)
	assert.True(t, got.IsLiked)
}

func TestLikeWithoutTokenMakesNoRequest(t *testing.T) {
	svc, m := newLikeService(t)

	m.session.EXPECT().Authenticated().Return(false)

	got, err := svc.Like(context.Background(), models.Profile{ID: 42})
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, got.IsLiked)
}

func TestLikeWithExpiredTokenMakesNoRequest(t *testing.T) {
	svc, m := newLikeService(t)

	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(true)

	_, err := svc.Like(context.Background(), models.Profile{ID: 42})
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestLikeAlreadyLiked(t *testing.T) {
	svc, m := newLikeService(t)

	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)

	got, err := svc.Like(context.Background(), models.Profile{ID: 42, IsLiked: true})
	require.ErrorIs(t, err, ErrAlreadyLiked)
	assert.True(t, got.IsLiked)
}

func TestLikeRejectedTokenReturnsToIdle(t *testing.T) {
	svc, m := newLikeService(t)

	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)
	m.source.EXPECT().LikeProfile(gomock.Any(), int64(42)).
		Return(adapter.ErrUnauthorized)

	got, err := svc.Like(context.Background(), models.Profile{ID: 42})
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, got.IsLiked)

	// a retry after re-login goes through
	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)
	m.source.EXPECT().LikeProfile(gomock.Any(), int64(42)).Return(nil)
	m.favorites.EXPECT().SaveFavorite(gomock.Any(), gomock.Any()).Return(nil)

	got, err = svc.Like(context.Background(), models.Profile{ID: 42})
	require.NoError(t, err)
	assert.True(t, got.IsLiked)
}

func TestLikeServerFailureIsRetryable(t *testing.T) {
	svc, m := newLikeService(t)

	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)
	m.source.EXPECT().LikeProfile(gomock.Any(), int64(42)).
		Return(errors.New("connection reset"))

	got, err := svc.Like(context.Background(), models.Profile{ID: 42})
	require.ErrorIs(t, err, ErrServiceUnavailable)
	assert.False(t, got.IsLiked)
}

func TestLikeWhileInFlight(t *testing.T) {
	svc, m := newLikeService(t)
	impl := svc.(*likeService)

	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)

	require.True(t, impl.acquire(42))

	_, err := svc.Like(context.Background(), models.Profile{ID: 42})
	require.ErrorIs(t, err, ErrLikeInFlight)

	impl.release(42)

	// once the first request completes, a new one is allowed
	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)
	m.source.EXPECT().LikeProfile(gomock.Any(), int64(42)).Return(nil)
	m.favorites.EXPECT().SaveFavorite(gomock.Any(), gomock.Any()).Return(nil)

	_, err = svc.Like(context.Background(), models.Profile{ID: 42})
	require.NoError(t, err)
}

func TestLikeSnapshotFailureDoesNotUndoLike(t *testing.T) {
	svc, m := newLikeService(t)

	m.session.EXPECT().Authenticated().Return(true)
	m.session.EXPECT().Expired().Return(false)
	m.source.EXPECT().LikeProfile(gomock.Any(), int64(42)).Return(nil)
	m.favorites.EXPECT().SaveFavorite(gomock.Any(), gomock.Any()).
		Return(errors.New("database is locked"))

	got, err := svc.Like(context.Background(), models.Profile{ID: 42})
	require.NoError(t, err)
	assert.True(t, got.IsLiked)
}
