// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDescriptor is returned when a descriptor violates the schema.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	// ErrMissingArgument is returned when a required input or output has no value.
	ErrMissingArgument = errors.New("missing required argument")
	// ErrTypeMismatch is returned when a File-typed argument receives a non-File value.
	ErrTypeMismatch = errors.New("argument type mismatch")
)

type (
	// InvalidDescriptorError aggregates every rule a descriptor breaks.
	// It wraps ErrInvalidDescriptor for errors.Is() compatibility.
	InvalidDescriptorError struct {
		// Source names the document (usually its file path).
		Source string
		// Errors holds every violation found in a single validation pass.
		Errors ValidationErrors
	}

	// MissingArgumentError is returned when a required argument is not supplied
	// and has no usable default.
	MissingArgumentError struct {
		ID string
	}

	// TypeMismatchError is returned when a supplied value is not of the expected
	// File representation.
	TypeMismatchError struct {
		ID       string
		Expected string
		Actual   string
	}
)

// Error implements the error interface for InvalidDescriptorError.
func (e *InvalidDescriptorError) Error() string {
	src := e.Source
	if src == "" {
		src = "<input>"
	}
	if len(e.Errors) == 0 {
		return fmt.Sprintf("invalid CWL descriptor %s", src)
	}
	return fmt.Sprintf("invalid CWL descriptor %s: %s", src, e.Errors.Error())
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDescriptorError) Unwrap() error {
	return ErrInvalidDescriptor
}

// Error implements the error interface for MissingArgumentError.
func (e *MissingArgumentError) Error() string {
	return "missing required value for argument: " + e.ID
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// Error implements the error interface for TypeMismatchError.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.ID, e.Expected, e.Actual)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// newInvalidDescriptor builds an InvalidDescriptorError holding a single message.
func newInvalidDescriptor(source, field, message string) *InvalidDescriptorError {
	return &InvalidDescriptorError{
		Source: source,
		Errors: ValidationErrors{{Field: field, Message: message}},
	}
}
