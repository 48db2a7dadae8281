// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New returns the defaults; Load layers a YAML file and env vars on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// TimeZone is the IANA zone dates are rendered in.
	TimeZone string `koanf:"timezone"`

	// WorkerCount bounds concurrent session formatting within one batch.
	WorkerCount int `koanf:"worker_count"`

	// MaxBatchSize caps POST /v1/sessions/present.
	MaxBatchSize int `koanf:"max_batch_size"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "text",
		Addr:         ":9080",
		TimeZone:     "UTC",
		WorkerCount:  runtime.NumCPU(),
		MaxBatchSize: 500,
	}
}
