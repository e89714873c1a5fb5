package config

import "errors"

var (
	// ErrConfigLoad reports a failure while loading one of the config
	// sources (environment, flags, JSON file).
	ErrConfigLoad = errors.New("failed to load configuration")

	// ErrInvalidAdapterConfigs reports invalid transport settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")

	// ErrInvalidStorageConfigs reports invalid local storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAppConfigs reports invalid application settings.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidWorkerConfigs reports invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configs")
)
