// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"errors"
	"fmt"
)

const (
	// OutputStdout captures the command's standard output.
	OutputStdout OutputType = "stdout"
	// OutputStderr captures the command's standard error.
	OutputStderr OutputType = "stderr"
	// OutputFile is a file (or, with Array, files) the command produces.
	OutputFile OutputType = "File"
)

// ErrInvalidOutputType is returned when an OutputType value is not one of the defined types.
var ErrInvalidOutputType = errors.New("invalid output type")

type (
	// OutputType is the kind of a declared output.
	OutputType string

	// InvalidOutputTypeError is returned when an OutputType value is not recognized.
	// It wraps ErrInvalidOutputType for errors.Is() compatibility.
	InvalidOutputTypeError struct {
		Value OutputType
	}

	// OutputArgument is one declared output of a tool.
	OutputArgument struct {
		ID    string
		Type  OutputType
		Array bool
	}
)

// Error implements the error interface for InvalidOutputTypeError.
func (e *InvalidOutputTypeError) Error() string {
	return fmt.Sprintf("invalid output type %q (valid: stdout, stderr, File)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputTypeError) Unwrap() error {
	return ErrInvalidOutputType
}

// IsValid returns whether the OutputType is one of the defined output types,
// and a list of validation errors if it is not.
func (t OutputType) IsValid() (bool, []error) {
	switch t {
	case OutputStdout, OutputStderr, OutputFile:
		return true, nil
	default:
		return false, []error{&InvalidOutputTypeError{Value: t}}
	}
}

// String returns the type name.
func (t OutputType) String() string { return string(t) }

// IsStream reports whether the output is a stdout or stderr redirection.
func (o *OutputArgument) IsStream() bool {
	return o.Type == OutputStdout || o.Type == OutputStderr
}

// IsFile reports whether the output is a File (or File array).
func (o *OutputArgument) IsFile() bool {
	return o.Type == OutputFile
}
