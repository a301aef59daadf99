// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/invowk/cwltool/internal/issue"
	"github.com/invowk/cwltool/internal/registry"
)

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools [pattern]",
		Short: "List the built-in tools",
		Long: `List the built-in tools. A glob pattern ("c*", "{wc,cat}") filters the list.
Built-in tools run with 'cwltool run <name>'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}

			names, err := registry.Match(pattern)
			if err != nil {
				return fail(cmd, nil, err)
			}
			if len(names) == 0 {
				return fail(cmd, nil, newServiceError(
					fmt.Errorf("%w: no built-in tool matches %q", registry.ErrToolNotFound, pattern),
					issue.ToolNotFoundId))
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range names {
				doc := ""
				if tool, err := registry.Lookup(name); err == nil {
					doc, _ = tool.Descriptor().Extra["doc"].(string)
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, doc)
			}
			return tw.Flush()
		},
	}
}
