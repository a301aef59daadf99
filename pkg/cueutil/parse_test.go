// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Record: {
	name:   string
	count?: int & >=1
}
`

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid data decodes", func(t *testing.T) {
		t.Parallel()

		result, err := ParseAndDecodeString[testRecord](testSchema, []byte(`name: "wc", count: 2`), "#Record", WithFilename("rec.cue"))
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if result.Value.Name != "wc" || result.Value.Count != 2 {
			t.Errorf("decoded = %+v, want {wc 2}", *result.Value)
		}
	})

	t.Run("schema violation includes filename", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecodeString[testRecord](testSchema, []byte(`name: 42`), "#Record", WithFilename("rec.cue"))
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "rec.cue") {
			t.Errorf("error should contain filename, got: %v", err)
		}
	})

	t.Run("oversized data rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecodeString[testRecord](testSchema, []byte(`name: "wc"`), "#Record", WithMaxFileSize(3))
		if err == nil {
			t.Fatal("expected size error")
		}
		if !strings.Contains(err.Error(), "<input>") {
			t.Errorf("error should name default input, got: %v", err)
		}
	})

	t.Run("unknown definition is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecodeString[testRecord](testSchema, []byte(`name: "wc"`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Errorf("expected internal error, got: %v", err)
		}
	})
}

func TestSchema_Check(t *testing.T) {
	t.Parallel()

	schema, err := CompileSchema([]byte(testSchema))
	if err != nil {
		t.Fatalf("CompileSchema() error = %v", err)
	}

	t.Run("valid value", func(t *testing.T) {
		if got := schema.Check("#Record", map[string]any{"name": "wc", "count": 1}); len(got) != 0 {
			t.Errorf("Check() = %v, want no violations", got)
		}
	})

	t.Run("wrong kind reports field path", func(t *testing.T) {
		got := schema.Check("#Record", map[string]any{"name": 7})
		if len(got) == 0 {
			t.Fatal("expected violations")
		}
		if !strings.Contains(got[0].String(), "name") {
			t.Errorf("violation %q should mention field name", got[0])
		}
	})

	t.Run("closed definition rejects unknown fields", func(t *testing.T) {
		got := schema.Check("#Record", map[string]any{"name": "wc", "bogus": true})
		if len(got) == 0 {
			t.Fatal("expected violations for unknown field")
		}
	})

	t.Run("missing definition", func(t *testing.T) {
		got := schema.Check("#Nope", map[string]any{})
		if len(got) != 1 || !strings.Contains(got[0].Message, "internal error") {
			t.Errorf("Check() = %v, want single internal error", got)
		}
	})
}

func TestCompileSchema_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := CompileSchema([]byte(`#R: {`)); err == nil {
		t.Error("expected compile error for malformed schema")
	}
}
