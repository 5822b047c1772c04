// Package config loads the optional guess configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

// Config is the root configuration for guess.
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Output OutputConfig `json:"output" yaml:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	Color bool `json:"color" yaml:"color"` // style output when stdout is a terminal
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// SlogLevel parses Level into a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Level)
	}
	return level, nil
}
