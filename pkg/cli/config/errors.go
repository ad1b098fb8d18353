package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound  = goerr.New("configuration file not found")
	ErrInvalidConfig   = goerr.New("invalid configuration")
	ErrInvalidLevel    = goerr.New("invalid threshold level")
	ErrInvalidWindow   = goerr.New("window must be positive")
	ErrInvalidLogLevel = goerr.New("invalid log level")
	ErrInvalidLogValue = goerr.New("invalid log format or output")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	TableKey      = "table"
	LevelKey      = "level"
	WindowKey     = "window"
)
