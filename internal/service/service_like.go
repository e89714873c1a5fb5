// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/prembandhan/matchclient/internal/adapter"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/session"
	"github.com/prembandhan/matchclient/internal/store"
	"github.com/prembandhan/matchclient/models"
)

type likeService struct {
	source    adapter.ProfileSource
	session   session.Session
	favorites store.FavoriteRepository
	logger    *logger.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

func NewLikeService(source adapter.ProfileSource, sess session.Session, favorites store.FavoriteRepository, log *logger.Logger) LikeService {
	return &likeService{
		source:    source,
		session:   sess,
		favorites: favorites,
		logger:    log,
		inFlight:  make(map[int64]struct{}),
	}
}

func (s *likeService) Like(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if !s.session.Authenticated() || s.session.Expired() {
		return profile, ErrAuthRequired
	}
	if profile.IsLiked {
		return profile, ErrAlreadyLiked
	}

	if !s.acquire(profile.ID) {
		return profile, ErrLikeInFlight
	}
	defer s.release(profile.ID)

	if err := s.source.LikeProfile(ctx, profile.ID); err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrAuthRequired) {
			s.logger.Info().
				Int64("profile_id", profile.ID).
				Msg("like rejected, token no longer accepted")
		} else {
			s.logger.Err(err).
				Int64("profile_id", profile.ID).
				Msg("like request failed")
		}
		return profile, mapped
	}

	profile.IsLiked = true

	if err := s.favorites.SaveFavorite(ctx, profile); err != nil {
		// the like went through on the server; losing the local snapshot
		// must not undo it
		s.logger.Warn().Err(err).
			Int64("profile_id", profile.ID).
			Msg("failed to save liked profile locally")
	}

	return profile, nil
}

// acquire marks the profile id as in flight. Returns false when a like for
// the same id has not completed yet.
func (s *likeService) acquire(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}

	return true
}

func (s *likeService) release(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, id)
}
