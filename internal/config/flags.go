package config

import (
	"flag"
	"os"
)

// parseFlags populates a StructuredConfig from command-line flags.
// Flags that the user did not pass are left at their zero value so the
// merge step does not clobber values from other sources.
func parseFlags() *StructuredConfig {
	return parseFlagsFromArgs(os.Args[1:])
}

func parseFlagsFromArgs(args []string) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("matchclient", flag.ContinueOnError)

	fs.StringVar(&cfg.Adapter.APIAddress, "a", "", "base URL of the remote profile API")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "timeout for a single API request")

	fs.StringVar(&cfg.App.Token, "token", "", "bearer token for authenticated requests")
	fs.StringVar(&cfg.App.TokenFile, "token-file", "", "file the session token is persisted in")
	fs.StringVar(&cfg.App.WebOrigin, "web-origin", "", "web front end origin used for share links")

	fs.StringVar(&cfg.Cache.Dir, "cache-dir", "", "directory for the local result cache")
	fs.DurationVar(&cfg.Cache.TTL, "cache-ttl", 0, "freshness window of cached results")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "path of the local favorites database")

	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "interval of the background featured refresh")

	fs.StringVar(&cfg.Browse.Query, "browse-query", "", "browse deep-link query to restore on startup")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to a JSON config file (shorthand)")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to a JSON config file")

	// Parse errors surface as usage output; unknown flags must not kill
	// the merge pipeline.
	_ = fs.Parse(args)

	return cfg
}
