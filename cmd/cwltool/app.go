// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/invowk/cwltool/internal/config"
	"github.com/invowk/cwltool/internal/engine"
	"github.com/invowk/cwltool/internal/issue"
	"github.com/invowk/cwltool/internal/logging"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App reference.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// globalOptions are the flags shared by every subcommand.
	globalOptions struct {
		verbose    bool
		configPath string
	}

	// session is the state one CLI invocation derives from its configuration.
	session struct {
		cfg     *config.Config
		logger  *log.Logger
		verbose bool
		style   string
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// open loads the configuration and builds the session logger.
// --verbose forces debug logging and verbose error output.
func (a *App) open(ctx context.Context, opts globalOptions) (*session, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		return nil, newServiceError(err, issue.ConfigLoadFailedId)
	}

	level := string(cfg.Log.Level)
	if opts.verbose {
		level = string(config.LogLevelDebug)
	}
	logger, err := logging.New(level, a.stderr)
	if err != nil {
		return nil, newServiceError(err, issue.ConfigLoadFailedId)
	}

	return &session{
		cfg:     cfg,
		logger:  logger,
		verbose: opts.verbose || cfg.UI.Verbose,
		style:   string(cfg.UI.Style),
	}, nil
}

// newEngine creates the task engine described by the session configuration.
func (s *session) newEngine() (*engine.Engine, error) {
	eng, err := engine.New(engine.Config{
		Shell:   engine.Shell(s.cfg.Engine.Shell),
		Workers: s.cfg.Engine.Workers,
		WorkDir: s.cfg.Engine.WorkDir,
	}, engine.WithLogger(s.logger))
	if err != nil {
		return nil, newServiceError(err, issue.ConfigLoadFailedId)
	}
	return eng, nil
}

// fail prints err with its help page, silences Cobra's own reporting and
// returns the ExitError carrying the process exit code. s may be nil when
// the configuration could not be loaded.
func fail(cmd *cobra.Command, s *session, err error) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	verbose, style, logger := false, string(config.StyleAuto), logging.Discard()
	if s != nil {
		verbose, style, logger = s.verbose, s.style, s.logger
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "%s %s\n", errorIcon, formatErrorForDisplay(err, verbose))

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(stderr, svcErr, style, logger)
	}

	code := 1
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}
	return &ExitError{Code: code, Err: err}
}
