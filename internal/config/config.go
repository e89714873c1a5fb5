// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// matchclient application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the bearer token and
	// the public web origin used for share links.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API address and request timeout used by
	// the transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds the local result-cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Storage holds configuration for the local favorites database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background refresh workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Browse holds the initial browse view state.
	Browse Browse `envPrefix:"BROWSE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration for the client session.
type App struct {
	// Token is a bearer token accepted directly from the environment,
	// bypassing the token file. Mostly useful in scripts and tests.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// TokenFile is the path of the file the session token is persisted
	// in between runs.
	// Env: APP_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`

	// WebOrigin is the public web front end origin used to build
	// shareable browse and profile links.
	// Env: APP_WEB_ORIGIN
	WebOrigin string `env:"WEB_ORIGIN"`
}

// Adapter holds settings for the outbound transport layer.
type Adapter struct {
	// APIAddress is the base URL of the PremBandhan REST API
	// (e.g. "https://pb-app-lac.vercel.app/api/v1").
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request before the client cancels it (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds settings for the local featured-profiles cache.
type Cache struct {
	// Dir is the directory the cache blob is written to.
	// Env: CACHE_DIR
	Dir string `env:"DIR"`

	// TTL is how long a cached result set stays fresh (e.g. "30m").
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Storage groups the configuration for local persistence backends.
type Storage struct {
	// DB holds the local favorites database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite favorites database.
type DB struct {
	// DSN is the SQLite file path used to open the database
	// (e.g. "matchclient.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the featured cache is re-warmed
	// in the background (e.g. "5m").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Browse holds the initial state of the browse view.
type Browse struct {
	// Query is a browse deep-link query string (the part after "?")
	// restored on startup so a shared link reproduces the same view.
	// Env: BROWSE_QUERY
	Query string `env:"QUERY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
