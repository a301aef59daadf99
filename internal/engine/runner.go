// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"io"
)

type (
	// Task is one command ready to run.
	Task struct {
		// Command is the shell command line.
		Command string
		// Dir is the working directory ("" for the process directory).
		Dir string
		// Stdout receives the command's standard output.
		Stdout io.Writer
		// Stderr receives the command's standard error.
		Stderr io.Writer
	}

	// Runner executes a task and reports its exit code. A non-nil error means
	// the command could not be run at all.
	Runner interface {
		Name() string
		Validate(command string) error
		Run(ctx context.Context, task Task) (int, error)
	}
)

// newRunner returns the runner for shell.
func newRunner(shell Shell) Runner {
	if shell == ShellNative {
		return NewNativeRunner()
	}
	return NewVirtualRunner()
}
