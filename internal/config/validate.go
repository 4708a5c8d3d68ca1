package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. The provider API key is
// deliberately not required here: the cue and local-transcript paths never
// touch the provider, and the client reports a configuration error when a
// transcription is actually requested without a key.
func (c *Config) Validate() error {
	if err := c.validateSearch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSearch() error {
	if c.Search.Threshold < 0 || c.Search.Threshold > 100 {
		return fmt.Errorf("search.threshold must be between 0 and 100, got %d", c.Search.Threshold)
	}
	if c.Search.WindowSize < 1 {
		return fmt.Errorf("search.window_size must be at least 1, got %d", c.Search.WindowSize)
	}
	if c.Search.ClipDuration < 0 {
		return fmt.Errorf("search.clip_duration must not be negative, got %d", c.Search.ClipDuration)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.New("logging.format must be console or json")
	}
	return nil
}
