package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prembandhan/matchclient/internal/cache"
	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/mock"
	"github.com/prembandhan/matchclient/models"
)

func featuredFixture() []models.Profile {
	return []models.Profile{
		{ID: 1, Name: "Priya Sharma", Featured: true},
		{ID: 2, Name: "Rahul Verma", Featured: true},
	}
}

func TestFeaturedServesFreshCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockProfileSource(ctrl)
	resultCache := mock.NewMockResultCache(ctrl)

	resultCache.EXPECT().Read(gomock.Any()).Return(featuredFixture(), nil)
	// no network call at all

	svc := NewFeaturedService(source, resultCache, logger.Nop())

	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, featuredFixture(), got)
}

func TestFeaturedMissFetchesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockProfileSource(ctrl)
	resultCache := mock.NewMockResultCache(ctrl)

	resultCache.EXPECT().Read(gomock.Any()).Return(nil, cache.ErrCacheMiss)
	source.EXPECT().FeaturedProfiles(gomock.Any()).Return(featuredFixture(), nil)
	resultCache.EXPECT().Write(gomock.Any(), featuredFixture()).Return(nil)

	svc := NewFeaturedService(source, resultCache, logger.Nop())

	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, featuredFixture(), got)
}

func TestFeaturedFetchFailureFallsBackToStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockProfileSource(ctrl)
	resultCache := mock.NewMockResultCache(ctrl)

	resultCache.EXPECT().Read(gomock.Any()).Return(nil, cache.ErrCacheMiss)
	source.EXPECT().FeaturedProfiles(gomock.Any()).
		Return(nil, errors.New("connection refused"))
	resultCache.EXPECT().ReadStale(gomock.Any()).Return(featuredFixture(), nil)

	svc := NewFeaturedService(source, resultCache, logger.Nop())

	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, featuredFixture(), got)
}

func TestFeaturedFetchFailureWithoutStaleErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockProfileSource(ctrl)
	resultCache := mock.NewMockResultCache(ctrl)

	resultCache.EXPECT().Read(gomock.Any()).Return(nil, cache.ErrCacheMiss)
	source.EXPECT().FeaturedProfiles(gomock.Any()).
		Return(nil, errors.New("connection refused"))
	resultCache.EXPECT().ReadStale(gomock.Any()).Return(nil, cache.ErrCacheMiss)

	svc := NewFeaturedService(source, resultCache, logger.Nop())

	_, err := svc.Featured(context.Background())
	require.ErrorIs(t, err, ErrServiceUnavailable)
}

// end-to-end through a real file cache: an expired entry must survive the
// fresh-read miss so a failed refresh can still serve it
func TestFeaturedStaleFallbackWithRealCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockProfileSource(ctrl)

	clk := testclock.NewClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	fileCache, err := cache.NewFileCache(
		config.ClientCache{Dir: t.TempDir(), TTL: 30 * time.Minute}, clk, logger.Nop())
	require.NoError(t, err)

	svc := NewFeaturedService(source, fileCache, logger.Nop())

	// warm the cache through a successful fetch
	source.EXPECT().FeaturedProfiles(gomock.Any()).Return(featuredFixture(), nil)
	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.Equal(t, featuredFixture(), got)

	// past the TTL with the network down: the stale entry is served
	clk.Advance(30*time.Minute + time.Second)
	source.EXPECT().FeaturedProfiles(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	got, err = svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, featuredFixture(), got)
}

func TestRefreshIgnoresCacheWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockProfileSource(ctrl)
	resultCache := mock.NewMockResultCache(ctrl)

	source.EXPECT().FeaturedProfiles(gomock.Any()).Return(featuredFixture(), nil)
	resultCache.EXPECT().Write(gomock.Any(), featuredFixture()).
		Return(errors.New("disk full"))

	svc := NewFeaturedService(source, resultCache, logger.Nop())

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, featuredFixture(), got)
}

func TestRefreshEmptyResultStillCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockProfileSource(ctrl)
	resultCache := mock.NewMockResultCache(ctrl)

	source.EXPECT().FeaturedProfiles(gomock.Any()).Return(nil, nil)
	resultCache.EXPECT().Write(gomock.Any(), gomock.Nil()).Return(nil)

	svc := NewFeaturedService(source, resultCache, logger.Nop())

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
