package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prembandhan/matchclient/internal/adapter"
	"github.com/prembandhan/matchclient/internal/filter"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/session"
	"github.com/prembandhan/matchclient/models"
)

type browseService struct {
	source  adapter.ProfileSource
	session session.Session
	logger  *logger.Logger

	// generation guards overlapping fetches: only the newest call may
	// deliver its result.
	generation atomic.Uint64
}

func NewBrowseService(source adapter.ProfileSource, sess session.Session, log *logger.Logger) BrowseService {
	return &browseService{
		source:  source,
		session: sess,
		logger:  log,
	}
}

func (s *browseService) Browse(ctx context.Context, f models.FilterState) ([]models.Profile, error) {
	gen := s.generation.Add(1)
	now := time.Now()

	serverSide := f.Search && s.session.Authenticated() && !s.session.Expired()

	var (
		profiles []models.Profile
		err      error
	)
	if serverSide {
		profiles, err = s.source.SearchProfiles(ctx, f)
	} else {
		profiles, err = s.source.PublicProfiles(ctx)
	}

	if s.generation.Load() != gen {
		s.logger.Debug().
			Uint64("generation", gen).
			Msg("discarding superseded browse result")
		return nil, ErrSuperseded
	}

	if err != nil {
		s.logger.Err(err).
			Bool("server_side", serverSide).
			Msg("browse fetch failed")
		return nil, mapAdapterError(err)
	}

	if serverSide {
		// the server already applied the structured criteria
		profiles = filter.ApplyLocal(profiles, f, now)
	} else {
		profiles = filter.Apply(profiles, f, now)
	}

	if profiles == nil {
		profiles = []models.Profile{}
	}

	return profiles, nil
}

func (s *browseService) Profile(ctx context.Context, id int64) (models.Profile, error) {
	profile, err := s.source.GetProfile(ctx, id)
	if err != nil {
		s.logger.Err(err).Int64("profile_id", id).Msg("profile fetch failed")
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}
