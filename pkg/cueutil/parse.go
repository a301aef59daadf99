// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type (
	// ParseResult contains the result of a successful CUE parse operation.
	ParseResult[T any] struct {
		// Value is the decoded Go value.
		Value *T

		// Unified is the unified CUE value, available for advanced use cases
		// such as extracting additional metadata or performing custom validation.
		Unified cue.Value
	}

	// Schema is a compiled CUE schema bound to its own CUE context.
	// A Schema may be shared; Check calls are serialized because the
	// underlying context is not safe for concurrent use.
	Schema struct {
		mu    sync.Mutex
		ctx   *cue.Context
		value cue.Value
	}
)

// ParseAndDecode performs the 3-step CUE parsing flow:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go value
//
// schemaPath is the path to the root definition (e.g., "#Config").
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	// Early file size check to prevent OOM from large files
	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)

	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}

// ParseAndDecodeString is a convenience wrapper that accepts schema as string.
func ParseAndDecodeString[T any](schema string, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, schemaPath, opts...)
}

// CompileSchema compiles CUE schema source in a fresh context.
func CompileSchema(schema []byte) (*Schema, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(schema)
	if value.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", value.Err())
	}
	return &Schema{ctx: ctx, value: value}, nil
}

// Check encodes data (a tree of maps, slices and scalars) into CUE, unifies it
// with the named definition and returns every violation found. Paths in the
// returned violations are relative to data.
func (s *Schema) Check(definition string, data any) []Violation {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := s.value.LookupPath(cue.ParsePath(definition))
	if def.Err() != nil {
		return []Violation{{Message: fmt.Sprintf("internal error: schema definition %s not found: %v", definition, def.Err())}}
	}

	encoded := s.ctx.Encode(data)
	if encoded.Err() != nil {
		return violationsOrMessage(encoded.Err())
	}

	unified := def.Unify(encoded)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return relativeTo(definition, violationsOrMessage(err))
	}
	return nil
}

// relativeTo strips the definition label CUE may report as the first path element.
func relativeTo(definition string, violations []Violation) []Violation {
	for i, v := range violations {
		switch {
		case v.Path == definition:
			violations[i].Path = ""
		case strings.HasPrefix(v.Path, definition+"."):
			violations[i].Path = strings.TrimPrefix(v.Path, definition+".")
		}
	}
	return violations
}

// violationsOrMessage never returns an empty slice for a non-nil error.
func violationsOrMessage(err error) []Violation {
	if vs := Violations(err); len(vs) > 0 {
		return vs
	}
	return []Violation{{Message: err.Error()}}
}
