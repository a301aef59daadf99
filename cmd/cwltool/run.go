// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/invowk/cwltool/internal/engine"
	"github.com/invowk/cwltool/internal/issue"
	"github.com/invowk/cwltool/pkg/cwl"
)

const shutdownTimeout = 10 * time.Second

func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run [-v] [--config file] <descriptor|tool> [values.yml | --id=value ...]",
		Short: "Run a tool and wait for it",
		Long: `Run a CommandLineTool and wait for it to finish.

The tool is a descriptor file or the name of a built-in tool (see 'cwltool tools').
Values are given as --id=value flags, lists in brackets (--files=[a.txt, b.txt]),
or as a single YAML/JSON values file. Declared stdout, stderr and File outputs
need a value: the file the output is written to.

On success the stdout file, if any, is printed after "STDOUT:". On failure the
stderr file, if any, is printed after "STDERR:" and cwltool exits with the
tool's exit code.`,
		Example: `  cwltool run wc --text_file=notes.txt --stdout=counts.txt
  cwltool run tools/find.cwl --dir=. --name='*.cwl' --stdout=found.txt
  cwltool run touch values.yml`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, app, args)
		},
	}
}

func runTool(cmd *cobra.Command, app *App, args []string) error {
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

	eng, err := s.newEngine()
	if err != nil {
		return fail(cmd, s, err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := eng.Shutdown(ctx); err != nil {
			s.logger.Warn("engine shutdown", "error", err)
		}
	}()

	result, err := tool.Submit(cmd.Context(), eng, values)
	if err != nil {
		if errors.Is(err, engine.ErrShellNotFound) {
			return fail(cmd, s, newServiceError(err, issue.ShellNotFoundId))
		}
		return fail(cmd, s, invalidArguments(err))
	}
	s.logger.Info("running", "tool", tool.FileName(), "command", tool.BaseCommand())

	waitErr := result.Wait(cmd.Context())
	if waitErr == nil {
		if result.Stdout() != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "STDOUT:")
			printFile(cmd.OutOrStdout(), result.Stdout(), s)
		}
		return nil
	}

	if result.Stderr() != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "STDERR:")
		printFile(cmd.ErrOrStderr(), result.Stderr(), s)
	}
	return fail(cmd, s, &ExitError{
		Code: engine.ExitCode(waitErr),
		Err:  newServiceError(waitErr, issue.TaskFailedId),
	})
}

// printFile copies the file at path to w. A missing file is logged, not fatal.
func printFile(w io.Writer, path string, s *session) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("cannot read output", "path", path, "error", err)
		return
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		s.logger.Warn("cannot read output", "path", path, "error", err)
	}
}

// resolve loads the session, the tool and its values for run and render.
// The session is returned whenever it was loaded, even on a later error.
func resolve(ctx context.Context, app *App, ia invocationArgs) (*session, *cwl.Tool, cwl.Values, error) {
	s, err := app.open(ctx, ia.global)
	if err != nil {
		return nil, nil, nil, err
	}
	tool, err := resolveTool(ia.tool)
	if err != nil {
		return s, nil, nil, err
	}
	values, err := resolveValues(tool, ia.values)
	if err != nil {
		return s, nil, nil, err
	}
	return s, tool, values, nil
}
