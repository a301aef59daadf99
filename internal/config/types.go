// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"runtime"
)

const (
	// ShellVirtual interprets commands with the embedded mvdan/sh interpreter.
	// Defined locally to avoid coupling config to internal/engine.
	ShellVirtual ShellMode = "virtual"
	// ShellNative runs commands with the host /bin/sh.
	ShellNative ShellMode = "native"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	StyleAuto  Style = "auto"
	StyleDark  Style = "dark"
	StyleLight Style = "light"
	StyleNoTTY Style = "notty"
)

var (
	// ErrInvalidShellMode is returned when a ShellMode value is not recognized.
	ErrInvalidShellMode = errors.New("invalid shell mode")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidStyle is returned when a Style value is not recognized.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidWorkers is returned when engine.workers is below one.
	ErrInvalidWorkers = errors.New("invalid worker count")
)

type (
	// ShellMode selects the engine runner.
	ShellMode string

	// LogLevel is the minimum level written to stderr.
	LogLevel string

	// Style is the glamour style used for help pages.
	Style string

	// InvalidValueError reports a field holding an unrecognized enum value.
	// It wraps the field's sentinel for errors.Is() compatibility.
	InvalidValueError struct {
		Field    string
		Value    string
		Valid    []string
		sentinel error
	}

	// EngineConfig configures task execution.
	EngineConfig struct {
		Shell   ShellMode `json:"shell" mapstructure:"shell"`
		Workers int       `json:"workers" mapstructure:"workers"`
		// WorkDir is where tasks run; empty means the current directory.
		WorkDir string `json:"work_dir" mapstructure:"work_dir"`
	}

	// LogConfig configures diagnostic logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		Verbose bool  `json:"verbose" mapstructure:"verbose"`
		Style   Style `json:"style" mapstructure:"style"`
	}

	// Config is the complete cwltool configuration.
	Config struct {
		Engine EngineConfig `json:"engine" mapstructure:"engine"`
		Log    LogConfig    `json:"log" mapstructure:"log"`
		UI     UIConfig     `json:"ui" mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q (valid: %v)", e.Field, e.Value, e.Valid)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidValueError) Unwrap() error { return e.sentinel }

// IsValid returns whether the ShellMode is defined, and the validation errors if not.
func (s ShellMode) IsValid() (bool, []error) {
	switch s {
	case ShellVirtual, ShellNative:
		return true, nil
	default:
		return false, []error{&InvalidValueError{
			Field: "engine.shell", Value: string(s),
			Valid: []string{"virtual", "native"}, sentinel: ErrInvalidShellMode,
		}}
	}
}

// IsValid returns whether the LogLevel is defined, and the validation errors if not.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidValueError{
			Field: "log.level", Value: string(l),
			Valid: []string{"debug", "info", "warn", "error"}, sentinel: ErrInvalidLogLevel,
		}}
	}
}

// IsValid returns whether the Style is defined, and the validation errors if not.
func (s Style) IsValid() (bool, []error) {
	switch s {
	case StyleAuto, StyleDark, StyleLight, StyleNoTTY:
		return true, nil
	default:
		return false, []error{&InvalidValueError{
			Field: "ui.style", Value: string(s),
			Valid: []string{"auto", "dark", "light", "notty"}, sentinel: ErrInvalidStyle,
		}}
	}
}

// Validate reports every invalid field of the configuration.
func (c *Config) Validate() error {
	var errs []error
	if ok, fieldErrs := c.Engine.Shell.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if c.Engine.Workers < 1 {
		errs = append(errs, fmt.Errorf("engine.workers: %w: %d", ErrInvalidWorkers, c.Engine.Workers))
	}
	if ok, fieldErrs := c.Log.Level.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.UI.Style.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Shell:   ShellVirtual,
			Workers: runtime.NumCPU(),
		},
		Log: LogConfig{Level: LogLevelWarn},
		UI:  UIConfig{Style: StyleAuto},
	}
}
