package config

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/kilianp07/haulplan/infra/logger"
)

// LoggingConfig defines how log lines are rendered.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Console prints human readable lines instead of JSON.
	Console bool `json:"console"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	_, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	return err
}

// Options converts the section for logger.Configure.
func (c LoggingConfig) Options() logger.Options {
	return logger.Options{Level: c.Level, Console: c.Console}
}
