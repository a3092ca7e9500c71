package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateChannels(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Worker.MaxConcurrent < 1 {
		return errors.New("worker.max_concurrent must be at least 1")
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.MarkerKey < 0 || c.Render.MarkerKey > 127 {
		return fmt.Errorf("render.marker_key must be between 0 and 127, got %d", c.Render.MarkerKey)
	}
	if c.Render.FormatLayer == "" {
		return errors.New("render.format_layer must be set")
	}
	return nil
}

func (c *Config) validateChannels() error {
	for key := range c.Channels {
		ch, err := strconv.Atoi(key)
		if err != nil || ch < 0 || ch > 15 {
			return fmt.Errorf("channels.%s: channel must be a number between 0 and 15", key)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json", "auto", "":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
