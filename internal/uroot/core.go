// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"
	"fmt"

	"github.com/u-root/u-root/pkg/core"
	"github.com/u-root/u-root/pkg/core/cat"
	"github.com/u-root/u-root/pkg/core/touch"
)

// coreCommand runs a u-root pkg/core utility with the handler context's I/O.
type coreCommand struct {
	name    string
	flags   []FlagInfo
	newCore func() core.Command
}

func newCatCommand() *coreCommand {
	return &coreCommand{
		name:    "cat",
		flags:   []FlagInfo{{Name: "u", Description: "ignored (for compatibility)"}},
		newCore: func() core.Command { return cat.New() },
	}
}

func newTouchCommand() *coreCommand {
	return &coreCommand{
		name: "touch",
		flags: []FlagInfo{
			{Name: "c", Description: "do not create any files"},
			{Name: "a", Description: "change only access time"},
			{Name: "m", Description: "change only modification time"},
			{Name: "d", Description: "use the given time", TakesValue: true},
		},
		newCore: func() core.Command { return touch.New() },
	}
}

// Name returns the command name.
func (c *coreCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *coreCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the wrapped utility.
func (c *coreCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	cmd := c.newCore()
	cmd.SetIO(hc.Stdin, hc.Stdout, hc.Stderr)
	cmd.SetWorkingDir(hc.Dir)
	cmd.SetLookupEnv(hc.LookupEnv)

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}
	return wrapError(c.name, cmd.RunContext(ctx, cmdArgs...))
}

// wrapError prefixes err with "[uroot] <name>:". Returns nil if err is nil.
func wrapError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[uroot] %s: %w", name, err)
}
