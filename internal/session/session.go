// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/utils"
)

// tokenStorageKey matches the key the web front end keeps the token
// under, so the persisted file stays recognizable across clients.
const tokenStorageKey = "prembandhanToken"

const tokenFilePerms = 0o600

type tokenFile map[string]string

// fileSession is the default implementation of [Session]. The token lives
// in memory behind a mutex and is mirrored to a small JSON file so a
// restart does not sign the user out.
type fileSession struct {
	mu        sync.RWMutex
	token     string
	path      string
	listeners []func(token string)
	logger    *logger.Logger
}

// NewFileSession constructs a [Session] persisted at cfg.TokenFile.
// A token provided directly via configuration wins over the persisted one.
func NewFileSession(cfg config.ClientApp, log *logger.Logger) (Session, error) {
	s := &fileSession{
		path:   cfg.TokenFile,
		logger: log,
	}

	if cfg.Token != "" {
		token, err := utils.ParseBearerToken(cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("configured token: %w", err)
		}
		s.token = token
		return s, nil
	}

	token, err := s.loadPersisted()
	if err != nil {
		return nil, err
	}
	s.token = token

	return s, nil
}

func (s *fileSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *fileSession) Authenticated() bool {
	return s.Token() != ""
}

func (s *fileSession) Expired() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	return utils.TokenExpired(token, time.Now())
}

func (s *fileSession) SetToken(raw string) error {
	if raw == "" {
		return s.Clear()
	}

	token, err := utils.ParseBearerToken(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	listeners := append([]func(string){}, s.listeners...)
	s.mu.Unlock()

	if err := s.persist(token); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist session token")
	}

	for _, listener := range listeners {
		listener(token)
	}

	return nil
}

func (s *fileSession) Clear() error {
	s.mu.Lock()
	s.token = ""
	listeners := append([]func(string){}, s.listeners...)
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}

	for _, listener := range listeners {
		listener("")
	}

	return nil
}

func (s *fileSession) Subscribe(listener func(token string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *fileSession) persist(token string) error {
	data, err := json.Marshal(tokenFile{tokenStorageKey: token})
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, tokenFilePerms); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	return nil
}

func (s *fileSession) loadPersisted() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	stored := tokenFile{}
	if err := json.Unmarshal(data, &stored); err != nil {
		// a broken token file should not keep the app from starting
		s.logger.Warn().Err(err).Msg("ignoring unreadable token file")
		return "", nil
	}

	return stored[tokenStorageKey], nil
}
