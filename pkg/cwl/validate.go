// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	_ "embed"
	"fmt"
	"regexp"
	"sync"

	"github.com/invowk/cwltool/pkg/cueutil"
)

const (
	// ClassCommandLineTool is the only descriptor class accepted.
	ClassCommandLineTool = "CommandLineTool"

	sectionInputs  = "inputs"
	sectionOutputs = "outputs"
)

var (
	//go:embed descriptor_schema.cue
	descriptorSchema []byte

	versionPattern = regexp.MustCompile(`^v[0-9]+(\.[0-9]+){0,2}$`)
	idPattern      = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

	compiledSchema = sync.OnceValues(func() (*cueutil.Schema, error) {
		return cueutil.CompileSchema(descriptorSchema)
	})
)

type (
	// descriptorValidator checks one document and collects ALL errors.
	descriptorValidator struct {
		schema *cueutil.Schema
		errors ValidationErrors
	}

	// record is a section entry with its id resolved, in document order.
	record struct {
		id     string
		fields *Mapping
	}
)

// Validate checks a raw descriptor against the schema. On success it returns
// raw unchanged; otherwise it returns an *InvalidDescriptorError listing every
// violated rule, not only the first.
func Validate(raw *RawDescriptor) (*RawDescriptor, error) {
	if raw == nil || raw.Document == nil {
		src := ""
		if raw != nil {
			src = raw.Source
		}
		return nil, newInvalidDescriptor(src, "", "descriptor is empty")
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	v := &descriptorValidator{schema: schema}
	v.validate(raw.Document)
	if len(v.errors) > 0 {
		return nil, &InvalidDescriptorError{Source: raw.Source, Errors: v.errors}
	}
	return raw, nil
}

func (v *descriptorValidator) add(field, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *descriptorValidator) validate(doc *Mapping) {
	v.validateVersion(doc)
	v.validateBaseCommand(doc)
	v.validateClass(doc)

	inputs, ok := doc.Get(sectionInputs)
	if !ok {
		v.add(sectionInputs, "is required")
	} else {
		records := v.section(sectionInputs, inputs, "#Input")
		if len(records) == 0 && isEmptySection(inputs) {
			v.add(sectionInputs, "must declare at least one input")
		}
	}

	if outputs, ok := doc.Get(sectionOutputs); ok {
		v.section(sectionOutputs, outputs, "#Output")
	}
}

func (v *descriptorValidator) validateVersion(doc *Mapping) {
	raw, ok := doc.Get("cwlVersion")
	if !ok {
		v.add("cwlVersion", "is required")
		return
	}
	version, isString := raw.(string)
	if !isString || !versionPattern.MatchString(version) {
		v.add("cwlVersion", "invalid CWL version %v (must look like v<major>[.<minor>[.<patch>]])", raw)
	}
}

func (v *descriptorValidator) validateBaseCommand(doc *Mapping) {
	raw, ok := doc.Get("baseCommand")
	if !ok {
		v.add("baseCommand", "is required")
		return
	}

	switch cmd := raw.(type) {
	case string:
		if cmd == "" {
			v.add("baseCommand", "must not be empty")
		}
	case []any:
		if len(cmd) == 0 {
			v.add("baseCommand", "must not be an empty list")
		}
		for i, part := range cmd {
			if _, isString := part.(string); !isString {
				v.add(NewFieldPath().Section("baseCommand").Index(i).String(), "must be a string, got %s", describeValue(part))
			}
		}
	default:
		v.add("baseCommand", "must be a string or a list of strings, got %s", describeValue(raw))
	}
}

func (v *descriptorValidator) validateClass(doc *Mapping) {
	raw, ok := doc.Get("class")
	if !ok {
		v.add("class", "is required")
		return
	}
	if class, isString := raw.(string); !isString || class != ClassCommandLineTool {
		v.add("class", "must be '%s', got %v", ClassCommandLineTool, raw)
	}
}

// section validates an inputs/outputs section in either representation and
// returns the records it could identify, in document order.
func (v *descriptorValidator) section(name string, raw any, definition string) []record {
	records, ok := sectionRecords(raw)
	if !ok {
		v.add(name, "must be a list of records with an 'id' or a mapping from id to record, got %s", describeValue(raw))
		return nil
	}

	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		path := NewFieldPath().Section(name)
		if rec.id != "" {
			path.Record(rec.id)
		} else {
			path.Index(i)
		}

		if rec.fields == nil {
			v.add(path.String(), "must be a mapping")
			continue
		}

		switch {
		case rec.id == "":
			v.add(path.String(), "is missing its 'id'")
		case !idPattern.MatchString(rec.id):
			v.add(path.String(), "has invalid id (must match %s)", idPattern.String())
		case seen[rec.id]:
			v.add(path.String(), "is declared more than once")
		}
		seen[rec.id] = true

		for _, violation := range v.schema.Check(definition, rec.fields.Plain()) {
			v.add(path.Copy().Field(violation.Path).String(), "%s", violation.Message)
		}

		v.validateRecord(path, rec.fields, name == sectionInputs)
	}

	return records
}

// validateRecord checks the cross-field rules the schema does not express.
func (v *descriptorValidator) validateRecord(path *FieldPath, fields *Mapping, isInput bool) {
	if typ, _ := fields.Get("type"); typ == typeArray {
		if _, hasItems := fields.Get("items"); !hasItems {
			v.add(path.Copy().Field("items").String(), "is required when type is 'array'")
		}
	}

	if !isInput {
		return
	}
	if binding, ok := fields.Get("inputBinding"); ok {
		if m, isMapping := binding.(*Mapping); !isMapping || m.Len() == 0 {
			v.add(path.Copy().Field("inputBinding").String(), "must be a non-empty mapping")
		}
	}
}

// sectionRecords normalizes both section representations into records.
// A list record's id comes from its "id" field; a mapping record's id is its key.
func sectionRecords(raw any) ([]record, bool) {
	switch section := raw.(type) {
	case []any:
		records := make([]record, 0, len(section))
		for _, item := range section {
			fields, _ := item.(*Mapping)
			id := ""
			if raw, ok := fields.Get("id"); ok {
				id, _ = raw.(string)
			}
			records = append(records, record{id: id, fields: fields})
		}
		return records, true
	case *Mapping:
		records := make([]record, 0, section.Len())
		for _, key := range section.Keys() {
			value, _ := section.Get(key)
			fields, _ := value.(*Mapping)
			records = append(records, record{id: key, fields: fields})
		}
		return records, true
	default:
		return nil, false
	}
}

// isEmptySection reports whether a well-shaped section holds no records.
func isEmptySection(raw any) bool {
	switch section := raw.(type) {
	case []any:
		return len(section) == 0
	case *Mapping:
		return section.Len() == 0
	default:
		return false
	}
}

// describeValue names the kind of a decoded value for error messages.
func describeValue(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *Mapping:
		return "a mapping"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int64, uint64, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
