// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/rustup-prompt/rustup-prompt/pkg/types"
)

const (
	// LogLevelDebug logs every probe and lookup.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs the selected database and the resolution.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs malformed or unreadable databases.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs only failures of subcommands.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum severity of diagnostics written to stderr.
	LogLevel string

	// Config is the rustup-prompt configuration.
	Config struct {
		// Home overrides the directory that holds .multirust and .rustup.
		Home types.FilesystemPath `json:"home,omitempty" mapstructure:"home"`
		// Verbose lowers the log level to debug.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// LogLevel is the minimum level written to stderr.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
	}

	// InvalidConfigError collects field validation failures.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// Validate returns ErrInvalidLogLevel for unknown levels.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, string(l))
	}
}

// String returns the level name.
func (l LogLevel) String() string { return string(l) }

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: LogLevelWarn,
	}
}

// EffectiveLogLevel is LogLevelDebug when Verbose is set, LogLevel otherwise.
func (c *Config) EffectiveLogLevel() LogLevel {
	if c.Verbose {
		return LogLevelDebug
	}
	return c.LogLevel
}

// Validate checks every field. An empty Home means "use the OS home directory".
func (c *Config) Validate() error {
	var errs []error
	if c.Home != "" {
		if err := c.Home.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("home: %w", err))
		}
	}
	if err := c.LogLevel.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field errors", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
