// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/invowk/cwltool/internal/uroot"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner interprets commands with mvdan.cc/sh. Builtins from its
// registry run in-process; any other program is started from the host.
type VirtualRunner struct {
	builtins *uroot.Registry
}

// NewVirtualRunner returns a runner using the default u-root builtins.
func NewVirtualRunner() *VirtualRunner {
	return &VirtualRunner{builtins: uroot.NewDefaultRegistry()}
}

// NewVirtualRunnerWithBuiltins returns a runner using builtins (nil disables them).
func NewVirtualRunnerWithBuiltins(builtins *uroot.Registry) *VirtualRunner {
	return &VirtualRunner{builtins: builtins}
}

// Name returns "virtual".
func (r *VirtualRunner) Name() string { return string(ShellVirtual) }

// Validate checks that command parses as shell syntax.
func (r *VirtualRunner) Validate(command string) error {
	if _, err := syntax.NewParser().Parse(strings.NewReader(command), "command"); err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}
	return nil
}

// Run interprets task.Command.
func (r *VirtualRunner) Run(ctx context.Context, task Task) (int, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(task.Command), "command")
	if err != nil {
		return 1, fmt.Errorf("failed to parse command: %w", err)
	}

	dir := task.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return 1, fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, task.Stdout, task.Stderr),
		interp.ExecHandlers(r.execHandler),
	)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return int(exitStatus), nil
		}
		return 1, fmt.Errorf("command execution failed: %w", err)
	}
	return 0, nil
}

// execHandler runs registered builtins and hands everything else to next.
// A failing builtin writes its error to stderr and exits with status 1.
func (r *VirtualRunner) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		if r.builtins == nil || len(args) == 0 {
			return next(ctx, args)
		}
		if _, ok := r.builtins.Lookup(args[0]); !ok {
			return next(ctx, args)
		}

		if err := r.builtins.Run(ctx, args[0], args); err != nil {
			fmt.Fprintln(interp.HandlerCtx(ctx).Stderr, err)
			return interp.ExitStatus(1)
		}
		return nil
	}
}
