package config

import "errors"

// ErrLoadConfig wraps failures reading the YAML file or the environment;
// ErrInvalidConfig wraps values that loaded but cannot be used.
var (
	ErrLoadConfig    = errors.New("load config failed")
	ErrInvalidConfig = errors.New("invalid config")
)
