// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// TypeBoolean renders as its prefix when truthy, nothing otherwise.
	TypeBoolean ArgumentType = "boolean"
	// TypeInt is a 32-bit integer input.
	TypeInt ArgumentType = "int"
	// TypeLong is a 64-bit integer input.
	TypeLong ArgumentType = "long"
	// TypeFloat is a single-precision floating-point input.
	TypeFloat ArgumentType = "float"
	// TypeDouble is a double-precision floating-point input.
	TypeDouble ArgumentType = "double"
	// TypeString is a string input.
	TypeString ArgumentType = "string"
	// TypeFile is a File input; it renders as the handle's path.
	TypeFile ArgumentType = "File"

	// typeArray is the explicit array type whose element type is read from "items".
	typeArray = "array"

	suffixArray    = "[]"
	suffixOptional = "?"

	defaultItemSeparator = " "
)

// ErrInvalidArgumentType is returned when an ArgumentType value is not one of the defined types.
var ErrInvalidArgumentType = errors.New("invalid argument type")

type (
	// ArgumentType is the scalar kind of an input argument.
	ArgumentType string

	// InvalidArgumentTypeError is returned when an ArgumentType value is not recognized.
	// It wraps ErrInvalidArgumentType for errors.Is() compatibility.
	InvalidArgumentTypeError struct {
		Value ArgumentType
	}

	// InputArgument is one input of a tool, with everything needed to render it.
	// Runtime values are never stored on the argument.
	InputArgument struct {
		// ID is the argument identifier.
		ID string
		// Type is the scalar kind (the element kind for arrays).
		Type ArgumentType
		// Array is true for "T[]" and "array" inputs.
		Array bool
		// Optional is true for "T?" inputs.
		Optional bool
		// Default is the descriptor default value (nil when absent).
		Default any
		// Position orders the argument on the command line; nil sorts last.
		Position *int
		// Prefix is emitted before the value (nil for none).
		Prefix *string
		// ItemSeparator joins array elements (nil means a single space).
		ItemSeparator *string
		// Separate puts a space between prefix and value.
		Separate bool
	}

	// InputOption configures an InputArgument built with NewInputArgument.
	InputOption func(*InputArgument)
)

// Error implements the error interface for InvalidArgumentTypeError.
func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("invalid argument type %q (valid: boolean, int, long, float, double, string, File)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidArgumentTypeError) Unwrap() error {
	return ErrInvalidArgumentType
}

// IsValid returns whether the ArgumentType is one of the defined argument types,
// and a list of validation errors if it is not.
func (t ArgumentType) IsValid() (bool, []error) {
	switch t {
	case TypeBoolean, TypeInt, TypeLong, TypeFloat, TypeDouble, TypeString, TypeFile:
		return true, nil
	default:
		return false, []error{&InvalidArgumentTypeError{Value: t}}
	}
}

// String returns the type name.
func (t ArgumentType) String() string { return string(t) }

// NewInputArgument returns an input argument with separate=true, then applies opts.
func NewInputArgument(id string, typ ArgumentType, opts ...InputOption) *InputArgument {
	arg := &InputArgument{
		ID:       id,
		Type:     typ,
		Separate: true,
	}
	for _, opt := range opts {
		opt(arg)
	}
	return arg
}

// WithArray marks the argument as an array.
func WithArray() InputOption {
	return func(a *InputArgument) { a.Array = true }
}

// WithOptional marks the argument as optional.
func WithOptional() InputOption {
	return func(a *InputArgument) { a.Optional = true }
}

// WithDefault sets the default value.
func WithDefault(v any) InputOption {
	return func(a *InputArgument) { a.Default = v }
}

// WithPosition sets the command-line position.
func WithPosition(pos int) InputOption {
	return func(a *InputArgument) { a.Position = &pos }
}

// WithPrefix sets the prefix.
func WithPrefix(prefix string) InputOption {
	return func(a *InputArgument) { a.Prefix = &prefix }
}

// WithItemSeparator sets the array item separator.
func WithItemSeparator(sep string) InputOption {
	return func(a *InputArgument) { a.ItemSeparator = &sep }
}

// WithSeparate sets whether prefix and value are joined by a space.
func WithSeparate(separate bool) InputOption {
	return func(a *InputArgument) { a.Separate = separate }
}

// IsFile reports whether the argument carries File values.
func (a *InputArgument) IsFile() bool {
	return a.Type == TypeFile
}

// HasDefault reports whether the argument carries a usable default. Falsy
// defaults (nil, false, 0, 0.0, "" and empty sequences) are ignored.
func (a *InputArgument) HasDefault() bool {
	return !isFalsy(a.Default)
}

// Template renders the documentation form of the argument, for example
// "[-x]", "--out <file>" or "[<names_1,...,names_n>]".
func (a *InputArgument) Template() string {
	if a.Type == TypeBoolean {
		return "[" + a.prefix() + "]"
	}

	var s string
	if a.Array {
		sep := a.itemSeparator()
		s = "<" + a.ID + "_1" + sep + "..." + sep + a.ID + "_n>"
	} else {
		s = "<" + a.ID + ">"
	}

	s = a.withPrefix(s)

	if a.Optional {
		s = "[" + s + "]"
	}
	return s
}

// Render renders value as a command-line fragment. A nil value falls back
// to the default (booleans excepted: they render only from the supplied value).
//
// File values must already be FileHandle values; type checking happens when
// an invocation is assembled.
func (a *InputArgument) Render(value any) string {
	if a.Type == TypeBoolean {
		if truthy(value) {
			return a.prefix()
		}
		return ""
	}

	if value == nil {
		value = a.Default
	}

	var s string
	if a.Array {
		items := sequence(value)
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = stringify(item)
		}
		s = strings.Join(parts, a.itemSeparator())
	} else {
		s = stringify(value)
	}

	return a.withPrefix(s)
}

func (a *InputArgument) withPrefix(s string) string {
	if a.Prefix == nil || *a.Prefix == "" {
		return s
	}
	if a.Separate {
		return *a.Prefix + " " + s
	}
	return *a.Prefix + s
}

func (a *InputArgument) prefix() string {
	if a.Prefix == nil {
		return ""
	}
	return *a.Prefix
}

func (a *InputArgument) itemSeparator() string {
	if a.ItemSeparator == nil || *a.ItemSeparator == "" {
		return defaultItemSeparator
	}
	return *a.ItemSeparator
}
