// Package config provides application configuration for DayStock.
// Configuration is loaded from TOML files with XDG-compliant paths. User
// settings (rounding mode, thresholds, display toggles) are persisted
// application state, not configuration; this package only covers process
// wiring: storage location, logging, appearance, and engine timing.
package config

import (
	"errors"
	"fmt"
)

// Config holds the complete application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
	Display DisplayConfig `toml:"display"`
	Sort    SortConfig    `toml:"sort"`
}

// StorageConfig controls the local record store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeDefault ColorScheme = "default"
	ColorSchemeMono    ColorScheme = "mono"
)

// SortConfig controls the display sort scheduling.
type SortConfig struct {
	// DebounceMS is the quiet period in milliseconds before a value
	// mutation triggers a re-sort of the displayed list.
	DebounceMS int `toml:"debounce_ms"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Sort.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sort: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	if s.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	validSchemes := map[ColorScheme]bool{
		ColorSchemeDefault: true,
		ColorSchemeMono:    true,
	}

	if !validSchemes[d.ColorScheme] && d.ColorScheme != "" {
		return fmt.Errorf("invalid color_scheme: %s", d.ColorScheme)
	}

	return nil
}

// Validate checks that the sort configuration is valid.
func (s *SortConfig) Validate() error {
	if s.DebounceMS < 0 {
		return errors.New("debounce_ms must be non-negative")
	}
	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "daystock.db",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "logs/daystock.log",
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeDefault,
		},
		Sort: SortConfig{
			DebounceMS: 500,
		},
	}
}
