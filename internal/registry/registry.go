// SPDX-License-Identifier: MPL-2.0

// Package registry holds the descriptors bundled with cwltool. Each one
// describes a command the virtual shell provides as a builtin, so they run
// without host binaries (find falls back to the host).
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/invowk/cwltool/pkg/cwl"
)

const descriptorExt = ".cwl"

// ErrToolNotFound is returned when no bundled descriptor has the requested name.
var ErrToolNotFound = errors.New("tool not found")

//go:embed tools/*.cwl
var bundled embed.FS

// Names returns the bundled tool names in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(bundled, "tools")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), descriptorExt); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Match returns the bundled tool names matching a doublestar pattern
// ("c*", "{wc,cat}").
func Match(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var matched []string
	for _, name := range Names() {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// Source returns the raw descriptor text of a bundled tool.
func Source(name string) ([]byte, error) {
	data, err := bundled.ReadFile(path.Join("tools", name+descriptorExt))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrToolNotFound, name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Lookup parses and validates a bundled tool.
func Lookup(name string) (*cwl.Tool, error) {
	data, err := Source(name)
	if err != nil {
		return nil, err
	}
	return cwl.ParseBytes(data, name+descriptorExt)
}
