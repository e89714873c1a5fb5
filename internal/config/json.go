package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON configs can spell durations the
// human way ("30m", "15s") instead of nanosecond integers.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("%w: duration must be a string or a number", ErrConfigLoad)
	}
}

// StructuredJSONConfig mirrors StructuredConfig with JSON-friendly field
// types. It exists so the file format can use readable duration strings.
type StructuredJSONConfig struct {
	App struct {
		Token     string `json:"token"`
		TokenFile string `json:"token_file"`
		WebOrigin string `json:"web_origin"`
	} `json:"app"`
	Adapter struct {
		APIAddress     string   `json:"api_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`
	Cache struct {
		Dir string   `json:"dir"`
		TTL Duration `json:"ttl"`
	} `json:"cache"`
	Storage struct {
		DB struct {
			DSN string `json:"database_uri"`
		} `json:"db"`
	} `json:"storage"`
	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers"`
	Browse struct {
		Query string `json:"query"`
	} `json:"browse"`
}

// toStructuredConfig converts the JSON representation into the canonical
// config struct used by the rest of the application.
func (j *StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App.Token = j.App.Token
	cfg.App.TokenFile = j.App.TokenFile
	cfg.App.WebOrigin = j.App.WebOrigin
	cfg.Adapter.APIAddress = j.Adapter.APIAddress
	cfg.Adapter.RequestTimeout = j.Adapter.RequestTimeout.Duration
	cfg.Cache.Dir = j.Cache.Dir
	cfg.Cache.TTL = j.Cache.TTL.Duration
	cfg.Storage.DB.DSN = j.Storage.DB.DSN
	cfg.Workers.RefreshInterval = j.Workers.RefreshInterval.Duration
	cfg.Browse.Query = j.Browse.Query

	return cfg
}

// parseJSONFile reads and parses a JSON config file at the given path.
func parseJSONFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	jsonCfg := &StructuredJSONConfig{}
	if err := json.Unmarshal(data, jsonCfg); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}
