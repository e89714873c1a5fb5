package config

import (
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	layers []*StructuredConfig
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// withEnv appends a layer populated from environment variables.
func (b *configBuilder) withEnv() *configBuilder {
	cfg, err := parseEnv()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("parse environment: %w", err))
		return b
	}
	b.layers = append(b.layers, cfg)

	return b
}

// withFlags appends a layer populated from command-line flags.
func (b *configBuilder) withFlags() *configBuilder {
	b.layers = append(b.layers, parseFlags())

	return b
}

// withJSON appends a layer populated from the JSON file whose path was
// resolved by the earlier layers. A missing path is not an error: the
// JSON layer is simply skipped.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonFilePath()
	if path == "" {
		return b
	}

	cfg, err := parseJSONFile(path)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("parse json config %q: %w", path, err))
		return b
	}
	b.layers = append(b.layers, cfg)

	return b
}

// jsonFilePath returns the last non-empty JSON path seen so far:
// later layers take priority over earlier ones.
func (b *configBuilder) jsonFilePath() string {
	path := ""
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}

	return path
}

// build merges the accumulated layers into a single config. Later layers
// override earlier ones field by field, then defaults are applied and the
// result is validated.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) != 0 {
		return nil, fmt.Errorf("%w: %v", ErrConfigLoad, b.errs)
	}

	merged := &StructuredConfig{}
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config layers: %w", err)
		}
	}

	merged.applyDefaults()
	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}
