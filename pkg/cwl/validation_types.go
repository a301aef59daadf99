// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"strconv"
	"strings"
)

type (
	// ValidationError represents a single rule violation found in a descriptor.
	ValidationError struct {
		// Field is the location of the violation (e.g., "input 'names' inputBinding.position").
		Field string
		// Message is the human-readable error message.
		Message string
	}

	// ValidationErrors is a collection of validation errors that implements the error interface.
	// This allows returning every violation from a single validation pass.
	ValidationErrors []ValidationError

	// FieldPath is a builder for constructing hierarchical field paths
	// such as "inputs input 'names'".
	FieldPath struct {
		parts []string
	}
)

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Error implements the error interface by joining all error messages.
func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var b strings.Builder
	b.WriteString("validation failed with ")
	b.WriteString(strconv.Itoa(len(errs)))
	b.WriteString(" errors:\n")

	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  - ")
		b.WriteString(err.Error())
	}

	return b.String()
}

// Fields returns the field paths of every error, in order.
func (errs ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

// NewFieldPath creates a new empty FieldPath builder.
func NewFieldPath() *FieldPath {
	return &FieldPath{}
}

// String returns the complete field path as a string.
func (p *FieldPath) String() string {
	return strings.Join(p.parts, " ")
}

// Section adds a top-level descriptor key (e.g., "inputs") to the path.
func (p *FieldPath) Section(name string) *FieldPath {
	p.parts = append(p.parts, name)
	return p
}

// Record adds a record context identified by its id.
func (p *FieldPath) Record(id string) *FieldPath {
	p.parts = append(p.parts, "'"+id+"'")
	return p
}

// Index adds a record context by index (1-indexed for user display).
func (p *FieldPath) Index(index int) *FieldPath {
	p.parts = append(p.parts, "#"+strconv.Itoa(index+1))
	return p
}

// Field adds a generic field context to the path.
func (p *FieldPath) Field(name string) *FieldPath {
	if name != "" {
		p.parts = append(p.parts, name)
	}
	return p
}

// Copy returns a copy of the FieldPath for branching into sub-contexts.
func (p *FieldPath) Copy() *FieldPath {
	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	return &FieldPath{parts: parts}
}
