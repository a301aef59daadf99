// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/invowk/cwltool/pkg/cueutil"
)

type (
	// Values maps argument identifiers to runtime values: scalars, sequences
	// or FileHandle values (ready or pending).
	Values map[string]any

	// Tool is a validated CommandLineTool with its argument model built once.
	// A Tool is immutable and safe for concurrent use; every Command or
	// Assemble call is a pure function of the tool and the supplied values.
	Tool struct {
		raw        *RawDescriptor
		descriptor *Descriptor
		inputs     []*InputArgument
		outputs    []*OutputArgument
	}
)

// Parse reads, validates and builds the descriptor stored at path.
func Parse(path string) (*Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	return ParseBytes(data, path)
}

// ParseBytes decodes, validates and builds a descriptor held in memory.
// source names the document in error messages.
func ParseBytes(data []byte, source string) (*Tool, error) {
	raw, err := Decode(data, source)
	if err != nil {
		return nil, err
	}
	return NewTool(raw)
}

// NewTool validates raw and builds its argument model.
func NewTool(raw *RawDescriptor) (*Tool, error) {
	d, err := NewDescriptor(raw)
	if err != nil {
		return nil, err
	}

	return &Tool{
		raw:        raw,
		descriptor: d,
		inputs:     buildInputs(d.Inputs),
		outputs:    buildOutputs(d.Outputs),
	}, nil
}

// Descriptor returns the normalized descriptor.
func (t *Tool) Descriptor() *Descriptor { return t.descriptor }

// Version returns the cwlVersion of the descriptor.
func (t *Tool) Version() string { return t.descriptor.Version }

// BaseCommand returns the base command joined with single spaces.
func (t *Tool) BaseCommand() string { return t.descriptor.Command() }

// Source returns the name the descriptor was loaded from.
func (t *Tool) Source() string { return t.descriptor.Source }

// FileName returns the base name of the descriptor source.
func (t *Tool) FileName() string {
	if t.descriptor.Source == "" {
		return ""
	}
	return filepath.Base(t.descriptor.Source)
}

// Inputs returns the input arguments in command-line order.
// The returned slice is a copy; the arguments themselves must not be modified.
func (t *Tool) Inputs() []*InputArgument {
	out := make([]*InputArgument, len(t.inputs))
	copy(out, t.inputs)
	return out
}

// Outputs returns the output arguments in declaration order.
func (t *Tool) Outputs() []*OutputArgument {
	out := make([]*OutputArgument, len(t.outputs))
	copy(out, t.outputs)
	return out
}

// Input returns the input argument with the given id.
func (t *Tool) Input(id string) (*InputArgument, bool) {
	for _, arg := range t.inputs {
		if arg.ID == id {
			return arg, true
		}
	}
	return nil, false
}

// Output returns the output argument with the given id.
func (t *Tool) Output(id string) (*OutputArgument, bool) {
	for _, out := range t.outputs {
		if out.ID == id {
			return out, true
		}
	}
	return nil, false
}

// CommandTemplate returns a usage synopsis such as
// "COMMAND TEMPLATE:\nfind <dir> -name <name> [-maxdepth <maxdepth>]".
func (t *Tool) CommandTemplate() string {
	templates := make([]string, len(t.inputs))
	for i, arg := range t.inputs {
		templates[i] = arg.Template()
	}
	return "COMMAND TEMPLATE:\n" + t.BaseCommand() + " " + strings.Join(templates, " ")
}

// Command renders the shell command for values. Each input, in position
// order, renders its supplied value, else its default (even when optional),
// else is skipped when optional; a required input with neither fails with
// *MissingArgumentError.
func (t *Tool) Command(values Values) (string, error) {
	parts := []string{t.BaseCommand()}

	for _, arg := range t.inputs {
		var fragment string
		value, supplied := lookup(values, arg.ID)
		switch {
		case supplied:
			fragment = arg.Render(value)
		case arg.HasDefault():
			fragment = arg.Render(nil)
		case arg.Optional:
			continue
		default:
			return "", &MissingArgumentError{ID: arg.ID}
		}

		if fragment != "" {
			parts = append(parts, fragment)
		}
	}

	return strings.Join(parts, " "), nil
}

// String returns the descriptor document as YAML, keys in document order.
func (t *Tool) String() string {
	out, err := yaml.Marshal(t.raw.Document)
	if err != nil {
		return fmt.Sprintf("%v", t.raw.Document.Plain())
	}
	return string(out)
}

// lookup returns the value supplied for id. A nil value counts as absent.
func lookup(values Values, id string) (any, bool) {
	v, ok := values[id]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
