// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

const defaultNativeShell = "/bin/sh"

// NativeRunner runs commands with a host POSIX shell ("sh -c <command>").
type NativeRunner struct {
	shell string
}

// NewNativeRunner returns a runner using /bin/sh.
func NewNativeRunner() *NativeRunner {
	return &NativeRunner{shell: defaultNativeShell}
}

// Name returns "native".
func (r *NativeRunner) Name() string { return string(ShellNative) }

// Validate checks that the host shell exists.
func (r *NativeRunner) Validate(string) error {
	if _, err := exec.LookPath(r.shell); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrShellNotFound, r.shell, err)
	}
	return nil
}

// Run starts the host shell with task.Command.
func (r *NativeRunner) Run(ctx context.Context, task Task) (int, error) {
	cmd := exec.CommandContext(ctx, r.shell, "-c", task.Command)
	cmd.Dir = task.Dir
	cmd.Stdout = task.Stdout
	cmd.Stderr = task.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to run command: %w", err)
	}
	return 0, nil
}
