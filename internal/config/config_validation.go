package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied when no source provides a value.
const (
	DefaultAPIAddress      = "https://pb-app-lac.vercel.app/api/v1"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultCacheTTL        = 30 * time.Minute
	DefaultRefreshInterval = 5 * time.Minute
	DefaultTokenFile       = "prembandhan_token"
	DefaultDatabaseDSN     = "matchclient.db"
	DefaultWebOrigin       = "https://prembandhan.in"
)

// applyDefaults fills zero-valued fields so the client can start with no
// configuration at all.
func (c *StructuredConfig) applyDefaults() {
	if c.Adapter.APIAddress == "" {
		c.Adapter.APIAddress = DefaultAPIAddress
	}
	if c.Adapter.RequestTimeout == 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.App.TokenFile == "" {
		c.App.TokenFile = DefaultTokenFile
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = DefaultDatabaseDSN
	}
	if c.Workers.RefreshInterval == 0 {
		c.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if c.App.WebOrigin == "" {
		c.App.WebOrigin = DefaultWebOrigin
	}
}

// validate checks the merged configuration for values that cannot work at
// runtime. Defaults are applied before validation, so failures here mean
// an explicitly provided value is broken.
func (c *StructuredConfig) validate() error {
	if !strings.HasPrefix(c.Adapter.APIAddress, "http://") &&
		!strings.HasPrefix(c.Adapter.APIAddress, "https://") &&
		strings.Contains(c.Adapter.APIAddress, "://") {
		return fmt.Errorf("%w: unsupported API address scheme in %q", ErrInvalidAdapterConfigs, c.Adapter.APIAddress)
	}
	if c.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: negative cache TTL", ErrInvalidAppConfigs)
	}
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs)
	}
	if c.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
