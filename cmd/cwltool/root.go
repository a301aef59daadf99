// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cwltool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "cwltool",
		Short: "Run CWL CommandLineTool descriptors",
		Long: TitleStyle.Render("cwltool") + SubtitleStyle.Render(" - Run CWL CommandLineTool descriptors") + `

cwltool validates Common Workflow Language CommandLineTool descriptors,
renders them into shell commands from runtime values, and runs those
commands in an embedded shell or the host shell.

` + SubtitleStyle.Render("Examples:") + `
  cwltool tools                                  List the built-in tools
  cwltool describe find                          Show a tool's command template
  cwltool render find --dir=. --name='*.cwl'     Print the command only
  cwltool run wc --text_file=a.txt --stdout=o    Run a tool
  cwltool validate tools/*.cwl                   Validate descriptors`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/cwltool/config.cue)")

	rootCmd.AddCommand(
		newRunCommand(app),
		newRenderCommand(app),
		newValidateCommand(app, opts),
		newDescribeCommand(app, opts),
		newToolsCommand(),
		newConfigCommand(app, opts),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the command's exit code.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(reportError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// reportError prints errors Cobra returned; ExitErrors were already
// reported by the failing command.
func reportError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
