package service

import (
	"context"
	"errors"

	"github.com/prembandhan/matchclient/internal/adapter"
	"github.com/prembandhan/matchclient/internal/cache"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/models"
)

type featuredService struct {
	source adapter.ProfileSource
	cache  cache.ResultCache
	logger *logger.Logger
}

func NewFeaturedService(source adapter.ProfileSource, resultCache cache.ResultCache, log *logger.Logger) FeaturedService {
	return &featuredService{
		source: source,
		cache:  resultCache,
		logger: log,
	}
}

// Featured serves the featured view: fresh cache first, then the network,
// then whatever stale entry is left when the network lets us down.
func (s *featuredService) Featured(ctx context.Context) ([]models.Profile, error) {
	cached, err := s.cache.Read(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) && !errors.Is(err, cache.ErrCacheCorrupted) {
		s.logger.Warn().Err(err).Msg("featured cache read failed, falling through to fetch")
	}

	profiles, fetchErr := s.Refresh(ctx)
	if fetchErr == nil {
		return profiles, nil
	}

	stale, staleErr := s.cache.ReadStale(ctx)
	if staleErr == nil {
		s.logger.Warn().
			Err(fetchErr).
			Int("count", len(stale)).
			Msg("featured fetch failed, serving stale cache")
		return stale, nil
	}

	return nil, fetchErr
}

// Refresh fetches the featured set and rewrites the cache entry.
func (s *featuredService) Refresh(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.source.FeaturedProfiles(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	if writeErr := s.cache.Write(ctx, profiles); writeErr != nil {
		// the fetched data is still good, a cold cache just costs a refetch
		s.logger.Warn().Err(writeErr).Msg("failed to write featured cache")
	}

	if profiles == nil {
		profiles = []models.Profile{}
	}

	return profiles, nil
}
