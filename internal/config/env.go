package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv populates a StructuredConfig from environment variables using
// the env tags declared on the config structs.
func parseEnv() (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
