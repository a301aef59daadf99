// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"strings"
)

// knownKeys are the descriptor keys consumed by the argument model; every
// other top-level key is carried through as metadata.
var knownKeys = map[string]bool{
	"cwlVersion":  true,
	"class":       true,
	"baseCommand": true,
	"inputs":      true,
	"outputs":     true,
}

type (
	// Descriptor is a validated, normalized tool descriptor. Both section
	// representations have been folded into ordered record slices.
	Descriptor struct {
		// Source names the document (usually its file path).
		Source string
		// Version is the cwlVersion value (e.g., "v1.2").
		Version string
		// BaseCommand holds the base command words in order.
		BaseCommand []string
		// Inputs are the input records in declaration order.
		Inputs []InputRecord
		// Outputs are the output records in declaration order.
		Outputs []OutputRecord
		// Extra holds every other top-level key (doc, label, hints, ...).
		Extra map[string]any
	}

	// InputRecord is one declared input as written in the descriptor.
	InputRecord struct {
		ID      string
		Type    string
		Items   string
		Default any
		Binding *InputBinding
		Doc     string
	}

	// InputBinding is the optional inputBinding block of an input record.
	// Nil fields were not set in the descriptor.
	InputBinding struct {
		Position      *int
		Prefix        *string
		Separate      *bool
		ItemSeparator *string
	}

	// OutputRecord is one declared output as written in the descriptor.
	OutputRecord struct {
		ID    string
		Type  string
		Items string
		Doc   string
	}
)

// NewDescriptor validates raw and normalizes it. The returned descriptor is
// not modified by this package afterwards.
func NewDescriptor(raw *RawDescriptor) (*Descriptor, error) {
	if _, err := Validate(raw); err != nil {
		return nil, err
	}

	doc := raw.Document
	d := &Descriptor{
		Source: raw.Source,
		Extra:  make(map[string]any),
	}

	version, _ := doc.Get("cwlVersion")
	d.Version, _ = version.(string)

	switch cmd := mustGet(doc, "baseCommand").(type) {
	case string:
		d.BaseCommand = []string{cmd}
	case []any:
		for _, part := range cmd {
			s, _ := part.(string)
			d.BaseCommand = append(d.BaseCommand, s)
		}
	}

	inputs, _ := sectionRecords(mustGet(doc, sectionInputs))
	for _, rec := range inputs {
		d.Inputs = append(d.Inputs, newInputRecord(rec))
	}

	if rawOutputs, ok := doc.Get(sectionOutputs); ok {
		outputs, _ := sectionRecords(rawOutputs)
		for _, rec := range outputs {
			d.Outputs = append(d.Outputs, newOutputRecord(rec))
		}
	}

	for _, key := range doc.Keys() {
		if knownKeys[key] {
			continue
		}
		value, _ := doc.Get(key)
		d.Extra[key] = plain(value)
	}

	return d, nil
}

// Command returns the base command words joined with single spaces.
func (d *Descriptor) Command() string {
	return strings.Join(d.BaseCommand, " ")
}

func newInputRecord(rec record) InputRecord {
	in := InputRecord{
		ID:    rec.id,
		Type:  stringField(rec.fields, "type"),
		Items: stringField(rec.fields, "items"),
		Doc:   stringField(rec.fields, "doc"),
	}
	if def, ok := rec.fields.Get("default"); ok {
		in.Default = plain(def)
	}

	if raw, ok := rec.fields.Get("inputBinding"); ok {
		b, _ := raw.(*Mapping)
		in.Binding = &InputBinding{}
		if v, ok := b.Get("position"); ok {
			if pos, isInt := v.(int); isInt {
				in.Binding.Position = &pos
			}
		}
		if v, ok := b.Get("prefix"); ok {
			if prefix, isString := v.(string); isString {
				in.Binding.Prefix = &prefix
			}
		}
		if v, ok := b.Get("separate"); ok {
			if separate, isBool := v.(bool); isBool {
				in.Binding.Separate = &separate
			}
		}
		if v, ok := b.Get("itemSeparator"); ok {
			if sep, isString := v.(string); isString {
				in.Binding.ItemSeparator = &sep
			}
		}
	}

	return in
}

func newOutputRecord(rec record) OutputRecord {
	return OutputRecord{
		ID:    rec.id,
		Type:  stringField(rec.fields, "type"),
		Items: stringField(rec.fields, "items"),
		Doc:   stringField(rec.fields, "doc"),
	}
}

func stringField(m *Mapping, key string) string {
	v, _ := m.Get(key)
	s, _ := v.(string)
	return s
}

func mustGet(m *Mapping, key string) any {
	v, _ := m.Get(key)
	return v
}
