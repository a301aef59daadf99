// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/invowk/cwltool/internal/issue"
	"github.com/invowk/cwltool/internal/registry"
	"github.com/invowk/cwltool/pkg/cwl"
)

// errValidationFailed summarizes a validate run with at least one invalid descriptor.
var errValidationFailed = errors.New("validation failed")

func newValidateCommand(app *App, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <descriptor|tool>...",
		Short: "Validate descriptors",
		Long: `Validate one or more descriptors against the supported CommandLineTool subset.
Every violation of every descriptor is reported in a single pass.`,
		Example: `  cwltool validate tools/*.cwl
  cwltool validate wc find`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open(cmd.Context(), *opts)
			if err != nil {
				return fail(cmd, nil, err)
			}

			stdout := cmd.OutOrStdout()
			invalid := 0
			for _, ref := range args {
				if err := validateOne(stdout, ref); err != nil {
					s.logger.Debug("descriptor rejected", "ref", ref, "error", err)
					invalid++
				}
			}

			fmt.Fprintln(stdout)
			if invalid > 0 {
				return fail(cmd, s, newServiceError(
					fmt.Errorf("%w: %d of %d descriptor(s) invalid", errValidationFailed, invalid, len(args)),
					issue.InvalidDescriptorId))
			}
			fmt.Fprintf(stdout, "%s %d descriptor(s) valid\n", successIcon, len(args))
			return nil
		},
	}
}

// validateOne validates a descriptor file, or a built-in tool when no file
// exists at ref, and prints the result.
func validateOne(w io.Writer, ref string) error {
	var err error
	if _, statErr := os.Stat(ref); statErr == nil || looksLikePath(ref) {
		_, err = cwl.Parse(ref)
	} else {
		_, err = registry.Lookup(ref)
	}

	if err == nil {
		fmt.Fprintf(w, "%s %s\n", successIcon, CmdStyle.Render(ref))
		return nil
	}

	fmt.Fprintf(w, "%s %s\n", errorIcon, CmdStyle.Render(ref))
	var invalid *cwl.InvalidDescriptorError
	if errors.As(err, &invalid) && len(invalid.Errors) > 0 {
		for _, v := range invalid.Errors {
			fmt.Fprintf(w, "    %s\n", v.Error())
		}
		return err
	}
	fmt.Fprintf(w, "    %s\n", err)
	return err
}
