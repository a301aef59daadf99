// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// stringify returns the command-line form of a single value: a FileHandle
// renders its path, everything else its natural string form.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case FileHandle:
		return t.Path()
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return formatFloat(t, 64)
	case float32:
		return formatFloat(float64(t), 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat renders f in plain decimal form. Integral values keep a
// trailing ".0" so a double written as 1.0 renders as "1.0".
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// sequence returns the elements of a slice or array value. Any other value
// (including strings) is treated as a one-element sequence; nil is empty.
func sequence(v any) []any {
	if v == nil {
		return nil
	}
	if items, ok := v.([]any); ok {
		return items
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// isSequence reports whether v is a slice or array value.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.ValueOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// truthy decides whether a boolean argument is switched on. Strings coming
// from the command line are parsed ("false" and "0" are off); any other
// non-empty string is on.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(t); err == nil {
			return b
		}
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return !isFalsy(v)
	}
}

// isFalsy reports the zero-like values a default must not take to be used:
// nil, false, numeric zero, the empty string and empty sequences or maps.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case *Mapping:
		return t.Len() == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}
