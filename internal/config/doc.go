// Package config loads the matchclient configuration from environment
// variables, command-line flags, and an optional JSON file, merging them
// in that order with later sources overriding earlier ones.
package config
