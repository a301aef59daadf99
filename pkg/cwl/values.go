// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidValue is returned when runtime values cannot be decoded.
var ErrInvalidValue = errors.New("invalid runtime value")

// ParseFlagValues decodes "--id=value" arguments. A value delimited by
// brackets is parsed as a YAML flow sequence ("[a, b]" or "['a','b']");
// every other value is kept as a string.
func ParseFlagValues(args []string) (Values, error) {
	values := make(Values, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		id := strings.TrimLeft(key, "-")
		if !found || !strings.HasPrefix(key, "-") || id == "" {
			return nil, fmt.Errorf("%w: %q is not of the form --id=value", ErrInvalidValue, arg)
		}

		if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
			var items []any
			if err := yaml.Unmarshal([]byte(value), &items); err != nil {
				return nil, fmt.Errorf("%w: --%s: cannot parse list %s: %w", ErrInvalidValue, id, value, err)
			}
			values[id] = items
			continue
		}
		values[id] = value
	}
	return values, nil
}

// LoadValues reads a YAML or JSON file mapping argument ids to values.
func LoadValues(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}
	return DecodeValues(data)
}

// DecodeValues decodes a YAML or JSON mapping of argument ids to values.
// An empty document yields empty values.
func DecodeValues(data []byte) (Values, error) {
	var values Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if values == nil {
		values = Values{}
	}
	return values, nil
}

// CoerceFiles returns a copy of values in which the values of File-typed
// inputs and File outputs are turned into File handles: path strings, and
// CWL file objects ({class: File, path: ...} or location), either alone or
// in sequences. Values that are already handles, or that cannot be
// coerced, are left as they are so Assemble can report them.
func CoerceFiles(t *Tool, values Values) Values {
	out := make(Values, len(values))
	for k, v := range values {
		out[k] = v
	}

	coerce := func(id string, array bool) {
		v, ok := lookup(out, id)
		if !ok {
			return
		}
		if !array || !isSequence(v) {
			out[id] = toFile(v)
			return
		}
		items := sequence(v)
		files := make([]any, len(items))
		for i, item := range items {
			files[i] = toFile(item)
		}
		out[id] = files
	}

	for _, arg := range t.inputs {
		if arg.IsFile() {
			coerce(arg.ID, arg.Array)
		}
	}
	for _, o := range t.outputs {
		if o.IsFile() {
			coerce(o.ID, o.Array)
		}
	}
	return out
}

func toFile(v any) any {
	switch t := v.(type) {
	case string:
		if t == "" {
			return v
		}
		return NewFile(t)
	case map[string]any:
		if class, _ := t["class"].(string); class != "File" {
			return v
		}
		for _, key := range []string{"path", "location"} {
			if p, ok := t[key].(string); ok && p != "" {
				return NewFile(strings.TrimPrefix(p, "file://"))
			}
		}
	}
	return v
}
