// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/invowk/cwltool/pkg/cwl"
)

func newDescribeCommand(app *App, opts *globalOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "describe <descriptor|tool>",
		Short: "Show a tool's command template and arguments",
		Example: `  cwltool describe find
  cwltool describe tools/wc.cwl --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open(cmd.Context(), *opts)
			if err != nil {
				return fail(cmd, nil, err)
			}
			tool, err := resolveTool(args[0])
			if err != nil {
				return fail(cmd, s, err)
			}

			md := describeMarkdown(tool)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			out, err := glamour.Render(md, s.style)
			if err != nil {
				return fail(cmd, s, fmt.Errorf("failed to render description: %w", err))
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source instead of rendering it")
	return cmd
}

// describeMarkdown documents tool: name, doc, template, argument tables.
func describeMarkdown(tool *cwl.Tool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", tool.FileName())
	if doc, ok := tool.Descriptor().Extra["doc"].(string); ok && doc != "" {
		sb.WriteString(strings.TrimSpace(doc) + "\n\n")
	}
	fmt.Fprintf(&sb, "CWL %s\n\n", tool.Version())

	sb.WriteString("```\n" + tool.CommandTemplate() + "\n```\n\n")

	sb.WriteString("## Inputs\n\n")
	sb.WriteString("| id | type | position | prefix | default |\n")
	sb.WriteString("|----|------|----------|--------|---------|\n")
	for _, in := range tool.Inputs() {
		position, prefix, def := "", "", ""
		if in.Position != nil {
			position = fmt.Sprint(*in.Position)
		}
		if in.Prefix != nil {
			prefix = "`" + *in.Prefix + "`"
		}
		if in.HasDefault() {
			def = fmt.Sprintf("`%v`", in.Default)
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", in.ID, inputType(in), position, prefix, def)
	}

	outputs := tool.Outputs()
	if len(outputs) > 0 {
		sb.WriteString("\n## Outputs\n\n")
		sb.WriteString("| id | type |\n")
		sb.WriteString("|----|------|\n")
		for _, out := range outputs {
			typ := out.Type.String()
			if out.Array {
				typ += "[]"
			}
			fmt.Fprintf(&sb, "| %s | %s |\n", out.ID, typ)
		}
	}

	return sb.String()
}

func inputType(in *cwl.InputArgument) string {
	typ := in.Type.String()
	if in.Array {
		typ += "[]"
	}
	if in.Optional {
		typ += "?"
	}
	return typ
}
