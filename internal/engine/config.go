// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"
	"runtime"
)

const (
	// ShellVirtual interprets commands in-process with mvdan.cc/sh.
	ShellVirtual Shell = "virtual"
	// ShellNative runs commands with the host's /bin/sh.
	ShellNative Shell = "native"
)

var (
	// ErrInvalidShell is returned when a Shell value is not recognized.
	ErrInvalidShell = errors.New("invalid shell")
	// ErrInvalidWorkers is returned when the worker limit is below one.
	ErrInvalidWorkers = errors.New("invalid worker count")
)

type (
	// Shell selects how task commands are executed.
	Shell string

	// InvalidShellError is returned when a Shell value is not recognized.
	// It wraps ErrInvalidShell for errors.Is() compatibility.
	InvalidShellError struct {
		Value Shell
	}

	// Config configures an Engine.
	Config struct {
		// Shell selects the runner.
		Shell Shell
		// Workers bounds the number of tasks running at once.
		Workers int
		// WorkDir is the task working directory; relative stdout/stderr
		// paths resolve against it. Empty means the process directory.
		WorkDir string
	}
)

// Error implements the error interface for InvalidShellError.
func (e *InvalidShellError) Error() string {
	return fmt.Sprintf("invalid shell %q (valid: virtual, native)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidShellError) Unwrap() error { return ErrInvalidShell }

// IsValid returns whether the Shell is one of the defined shells,
// and a list of validation errors if it is not.
func (s Shell) IsValid() (bool, []error) {
	switch s {
	case ShellVirtual, ShellNative:
		return true, nil
	default:
		return false, []error{&InvalidShellError{Value: s}}
	}
}

// String returns the shell name.
func (s Shell) String() string { return string(s) }

// DefaultConfig returns the virtual shell with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Shell:   ShellVirtual,
		Workers: runtime.NumCPU(),
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if ok, shellErrs := c.Shell.IsValid(); !ok {
		errs = append(errs, shellErrs...)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidWorkers, c.Workers))
	}
	return errors.Join(errs...)
}
