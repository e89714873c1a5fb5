// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/juju/clock"

	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/models"
)

const (
	cacheFileName   = "featured.json"
	prewarmTimeout  = 5 * time.Second
	cacheFilePerms  = 0o600
	cacheDirPerms   = 0o700
	prewarmParallel = 4
)

// fileCache is the default implementation of [ResultCache]. It keeps a
// single JSON blob on disk and uses an injectable clock so freshness can
// be tested without sleeping.
type fileCache struct {
	dir     string
	ttl     time.Duration
	clock   clock.Clock
	client  *resty.Client
	logger  *logger.Logger
	prewarm bool
}

// NewFileCache constructs a [ResultCache] backed by a file in cfg.Dir.
// An empty cfg.Dir resolves to a "matchclient" subdirectory of the user
// cache directory.
func NewFileCache(cfg config.ClientCache, clk clock.Clock, log *logger.Logger) (ResultCache, error) {
	dir := cfg.Dir
	if dir == "" {
		userDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		dir = filepath.Join(userDir, "matchclient")
	}
	if err := os.MkdirAll(dir, cacheDirPerms); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	return &fileCache{
		dir:     dir,
		ttl:     cfg.TTL,
		clock:   clk,
		client:  resty.New().SetTimeout(prewarmTimeout),
		logger:  log,
		prewarm: true,
	}, nil
}

func (c *fileCache) path() string {
	return filepath.Join(c.dir, cacheFileName)
}

// Read returns the cached profiles when the entry is younger than the TTL.
// An expired entry is reported as a miss but stays on disk: callers fall
// through to the network and the entry remains reachable through ReadStale
// until a successful refresh overwrites it or Clear removes it.
func (c *fileCache) Read(ctx context.Context) ([]models.Profile, error) {
	entry, err := c.load()
	if err != nil {
		return nil, err
	}

	if entry.Age(c.clock.Now()) >= c.ttl {
		c.logger.Debug().
			Time("written_at", entry.WrittenAt()).
			Msg("cached results expired")
		return nil, ErrCacheMiss
	}

	return entry.Data, nil
}

// ReadStale returns the cached profiles no matter how old the entry is.
func (c *fileCache) ReadStale(ctx context.Context) ([]models.Profile, error) {
	entry, err := c.load()
	if err != nil {
		return nil, err
	}

	return entry.Data, nil
}

// Write replaces the cache entry with the given profiles stamped at the
// current clock time, then kicks off image pre-warming in the background.
func (c *fileCache) Write(ctx context.Context, profiles []models.Profile) error {
	entry := models.CacheEntry{
		Data:      profiles,
		Timestamp: c.clock.Now().UnixMilli(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	tmp := c.path() + ".tmp"
	if err := os.WriteFile(tmp, data, cacheFilePerms); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, c.path()); err != nil {
		return fmt.Errorf("commit cache entry: %w", err)
	}

	if c.prewarm {
		go c.prewarmImages(profiles)
	}

	return nil
}

// Clear removes the cache entry. A missing entry is not an error.
func (c *fileCache) Clear(ctx context.Context) error {
	if err := os.Remove(c.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear cache: %w", err)
	}

	return nil
}

func (c *fileCache) load() (*models.CacheEntry, error) {
	data, err := os.ReadFile(c.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("read cache entry: %w", err)
	}

	entry := &models.CacheEntry{}
	if err := json.Unmarshal(data, entry); err != nil {
		c.logger.Warn().Err(err).Msg("removing corrupted cache entry")
		_ = os.Remove(c.path())
		return nil, fmt.Errorf("%w: %v", ErrCacheCorrupted, err)
	}

	return entry, nil
}

// prewarmImages requests each profile's primary image once so the remote
// CDN has them hot by the time the UI asks. Best effort only: failures are
// logged at debug level and otherwise ignored.
func (c *fileCache) prewarmImages(profiles []models.Profile) {
	sem := make(chan struct{}, prewarmParallel)

	for _, profile := range profiles {
		url := profile.PrimaryImageURL()
		if url == "" {
			continue
		}

		sem <- struct{}{}
		go func(url string) {
			defer func() { <-sem }()

			resp, err := c.client.R().Get(url)
			if err != nil {
				c.logger.Debug().Err(err).Str("url", url).Msg("image pre-warm failed")
				return
			}
			if resp.IsError() {
				c.logger.Debug().
					Int("status", resp.StatusCode()).
					Str("url", url).
					Msg("image pre-warm rejected")
			}
		}(url)
	}
}
