// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// ClientAdapter holds the transport settings handed to the HTTP adapter.
type ClientAdapter struct {
	APIAddress     string
	RequestTimeout time.Duration
}

// ClientApp holds session and presentation settings.
type ClientApp struct {
	Token     string
	TokenFile string
	WebOrigin string
}

// ClientCache holds local cache settings.
type ClientCache struct {
	Dir string
	TTL time.Duration
}

// ClientStorage holds local favorites database settings.
type ClientStorage struct {
	DSN string
}

// ClientWorkers holds background worker settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientBrowse holds the initial browse view state.
type ClientBrowse struct {
	Query string
}

// ClientConfig is the view of the merged configuration consumed by the
// client application wiring.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Cache   ClientCache
	Storage ClientStorage
	Workers ClientWorkers
	Browse  ClientBrowse
}

// GetClientConfig loads the full configuration and projects it into the
// client view.
func GetClientConfig() (*ClientConfig, error) {
	structured, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return structured.toClientConfig(), nil
}

func (c *StructuredConfig) toClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Token:     c.App.Token,
			TokenFile: c.App.TokenFile,
			WebOrigin: c.App.WebOrigin,
		},
		Adapter: ClientAdapter{
			APIAddress:     c.Adapter.APIAddress,
			RequestTimeout: c.Adapter.RequestTimeout,
		},
		Cache: ClientCache{
			Dir: c.Cache.Dir,
			TTL: c.Cache.TTL,
		},
		Storage: ClientStorage{
			DSN: c.Storage.DB.DSN,
		},
		Workers: ClientWorkers{
			RefreshInterval: c.Workers.RefreshInterval,
		},
		Browse: ClientBrowse{
			Query: c.Browse.Query,
		},
	}
}
