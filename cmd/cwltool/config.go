// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/cwltool/internal/config"
)

// newConfigCommand creates the `cwltool config` command tree.
func newConfigCommand(app *App, opts *globalOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cwltool configuration",
		Long: `Manage cwltool configuration.

Configuration is stored in:
  - Linux: ~/.config/cwltool/config.cue
  - macOS: ~/Library/Application Support/cwltool/config.cue
  - Windows: %APPDATA%\cwltool\config.cue

CWLTOOL_* environment variables override the file (CWLTOOL_ENGINE_WORKERS=4).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open(cmd.Context(), *opts)
			if err != nil {
				return fail(cmd, nil, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(s.cfg))
			return nil
		},
	})

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, written, err := config.WriteDefault(dir)
			if err != nil {
				return fail(cmd, nil, err)
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration already exists: %s\n", WarningStyle.Render("!"), CmdStyle.Render(path))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", successIcon, CmdStyle.Render(path))
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to write config.cue to (default is the platform config directory)")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				fmt.Fprintln(cmd.OutOrStdout(), opts.configPath)
				return nil
			}
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return fail(cmd, nil, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	return cfgCmd
}
