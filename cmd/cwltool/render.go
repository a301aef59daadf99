// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"github.com/invowk/cwltool/pkg/cwl"
)

func newRenderCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "render [-v] [--config file] <descriptor|tool> [values.yml | --id=value ...]",
		Short: "Print the command a tool would run",
		Long: `Print the shell command rendered from a tool and its values without running it.
Redirections are appended for stdout and stderr outputs that were given a value.`,
		Example: `  cwltool render find --dir=. --name='*.go'
  cwltool render tools/wc.cwl --text_file=notes.txt --stdout=counts.txt`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ia, err := parseInvocationArgs(args)
			if ia.help {
				return cmd.Help()
			}
			if err != nil {
				return fail(cmd, nil, err)
			}

			s, tool, values, err := resolve(cmd.Context(), app, ia)
			if err != nil {
				return fail(cmd, s, err)
			}

			line, err := renderLine(tool, values)
			if err != nil {
				return fail(cmd, s, invalidArguments(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

// renderLine renders the command and the redirections of the stream
// outputs present in values.
func renderLine(tool *cwl.Tool, values cwl.Values) (string, error) {
	command, err := tool.Command(values)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(command)
	for _, out := range tool.Outputs() {
		if !out.IsStream() {
			continue
		}
		target := ""
		switch v := values[out.ID].(type) {
		case string:
			target = v
		case cwl.FileHandle:
			target = v.Path()
		}
		if target == "" {
			continue
		}
		op := " > "
		if out.Type == cwl.OutputStderr {
			op = " 2> "
		}
		quoted, err := syntax.Quote(target, syntax.LangPOSIX)
		if err != nil {
			return "", fmt.Errorf("output %q: %w", out.ID, err)
		}
		sb.WriteString(op + quoted)
	}
	return sb.String(), nil
}
