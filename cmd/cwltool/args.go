// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/cwltool/internal/issue"
	"github.com/invowk/cwltool/internal/registry"
	"github.com/invowk/cwltool/pkg/cwl"
)

// errMissingTool is returned when no descriptor or built-in name was given.
var errMissingTool = errors.New("missing tool: pass a descriptor path or a built-in tool name")

// invocationArgs is the manually parsed command line of run and render.
// Global flags are recognized only before the tool reference; everything
// after it belongs to the tool.
type invocationArgs struct {
	global globalOptions
	help   bool
	tool   string
	values []string
}

// parseInvocationArgs splits args into global flags, the tool reference and
// the tool's value arguments.
func parseInvocationArgs(args []string) (invocationArgs, error) {
	var out invocationArgs

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			out.help = true
		case arg == "-v" || arg == "--verbose":
			out.global.verbose = true
		case arg == "--config":
			if i+1 >= len(args) {
				return out, errors.New("flag needs an argument: --config")
			}
			i++
			out.global.configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			out.global.configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-"):
			return out, fmt.Errorf("unknown flag %q before the tool reference", arg)
		default:
			out.tool = arg
			out.values = args[i+1:]
			return out, nil
		}
	}

	if !out.help {
		return out, errMissingTool
	}
	return out, nil
}

// resolveTool loads ref as a descriptor file when one exists at that path,
// and as a built-in tool name otherwise.
func resolveTool(ref string) (*cwl.Tool, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		tool, err := cwl.Parse(ref)
		if err != nil {
			return nil, newServiceError(issue.NewErrorContext().
				WithOperation("load descriptor").
				WithResource(ref).
				WithSuggestion("Run 'cwltool validate "+ref+"' to list every violation").
				Wrap(err).
				BuildError(), issue.InvalidDescriptorId)
		}
		return tool, nil
	}

	if looksLikePath(ref) {
		return nil, newServiceError(fmt.Errorf("descriptor not found: %s", ref), issue.DescriptorNotFoundId)
	}

	tool, err := registry.Lookup(ref)
	if err != nil {
		if errors.Is(err, registry.ErrToolNotFound) {
			return nil, newServiceError(err, issue.ToolNotFoundId)
		}
		return nil, newServiceError(err, issue.InvalidDescriptorId)
	}
	return tool, nil
}

func looksLikePath(ref string) bool {
	if strings.ContainsRune(ref, filepath.Separator) || strings.Contains(ref, "/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".cwl", ".yml", ".yaml", ".json":
		return true
	}
	return false
}

// resolveValues reads the runtime values: a single argument not starting
// with "-" names a YAML/JSON values file, anything else is "--id=value" flags.
// Path strings for File-typed arguments become file handles.
func resolveValues(tool *cwl.Tool, args []string) (cwl.Values, error) {
	var (
		values cwl.Values
		err    error
	)
	if len(args) == 1 && !strings.HasPrefix(args[0], "-") {
		values, err = cwl.LoadValues(args[0])
	} else {
		values, err = cwl.ParseFlagValues(args)
	}
	if err != nil {
		return nil, invalidArguments(err)
	}
	return cwl.CoerceFiles(tool, values), nil
}

// invalidArguments marks err as a problem with the supplied values,
// keeping the original message.
func invalidArguments(err error) error {
	return newServiceError(fmt.Errorf("invalid arguments: %w", err), issue.InvalidArgumentsId)
}
