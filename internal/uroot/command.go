// SPDX-License-Identifier: MPL-2.0

package uroot

import "context"

type (
	// Command is a builtin utility of the virtual shell.
	Command interface {
		// Name returns the command name (e.g., "cat").
		Name() string

		// Run executes the command. args[0] is the command name, args[1:] the
		// arguments. I/O and the working directory come from the HandlerContext
		// stored in ctx.
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this implementation understands.
		// Other flags are ignored.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag.
	FlagInfo struct {
		// Name is the flag name without dashes.
		Name string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value.
		TakesValue bool
	}
)
