// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// Violation is a single schema violation found while checking a value.
type Violation struct {
	// Path is the JSON path to the offending field (e.g., "inputBinding.position").
	// Empty when the violation concerns the value as a whole.
	Path string

	// Message is the violation message without the path prefix.
	Message string
}

// String renders the violation as "<path>: <message>".
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// FormatError formats a CUE error with JSON path prefixes for clear error messages.
//
// Error format: <file-path>: <json-path>: <message>
//
// Examples:
//   - config.cue: engine.workers: invalid value 0 (out of bound >=1)
//   - config.cue: log.level: conflicting values "trace" and "debug"
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	violations := Violations(err)
	if len(violations) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	if len(violations) == 1 {
		return fmt.Errorf("%s: %s", filePath, violations[0])
	}

	lines := make([]string, 0, len(violations))
	for _, v := range violations {
		lines = append(lines, v.String())
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// Violations flattens a CUE error into one Violation per underlying error.
// Duplicate messages (CUE reports each failed disjunct separately) are dropped.
// A non-CUE error yields nil.
func Violations(err error) []Violation {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(cueErrors))
	result := make([]Violation, 0, len(cueErrors))
	for _, e := range cueErrors {
		pathStr := formatPath(errors.Path(e))
		msg := e.Error()

		// CUE sometimes includes the path in the message itself
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimPrefix(msg, pathStr)
			msg = strings.TrimPrefix(msg, ":")
			msg = strings.TrimSpace(msg)
		}

		v := Violation{Path: pathStr, Message: msg}
		if seen[v.String()] {
			continue
		}
		seen[v.String()] = true
		result = append(result, v)
	}

	return result
}

// formatPath converts a CUE error path to JSON-path notation for user-facing messages.
// CUE provides error paths as flat string slices (e.g., ["inputs", "0", "type"]) where
// numeric elements represent array indices; this produces "inputs[0].type".
func formatPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var result strings.Builder
	for i, part := range path {
		isIndex := part != ""
		for _, c := range part {
			if c < '0' || c > '9' {
				isIndex = false
				break
			}
		}

		if isIndex && i > 0 {
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
		} else {
			if i > 0 {
				result.WriteString(".")
			}
			result.WriteString(part)
		}
	}

	return result.String()
}

// CheckFileSize verifies that data does not exceed the specified maximum size.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
