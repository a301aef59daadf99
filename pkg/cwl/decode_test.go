// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestDecode_PreservesMappingOrder(t *testing.T) {
	t.Parallel()

	raw, err := Decode([]byte("z: 1\na: 2\nm:\n  y: true\n  b: false\n"), "order.yml")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := raw.Document.Keys(); !reflect.DeepEqual(got, []string{"z", "a", "m"}) {
		t.Errorf("Keys() = %v, want [z a m]", got)
	}

	nested, _ := raw.Document.Get("m")
	m, ok := nested.(*Mapping)
	if !ok {
		t.Fatalf("nested value is %T, want *Mapping", nested)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"y", "b"}) {
		t.Errorf("nested Keys() = %v, want [y b]", got)
	}
}

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	raw, err := Decode([]byte(`{"cwlVersion": "v1.2", "baseCommand": ["echo", "hi"], "n": 1.5}`), "tool.json")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := map[string]any{
		"cwlVersion":  "v1.2",
		"baseCommand": []any{"echo", "hi"},
		"n":           1.5,
	}
	if got := raw.Document.Plain(); !reflect.DeepEqual(got, want) {
		t.Errorf("Plain() = %#v, want %#v", got, want)
	}
}

func TestDecode_Anchors(t *testing.T) {
	t.Parallel()

	raw, err := Decode([]byte("base: &b {type: string}\ncopy: *b\n"), "alias.yml")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	copied, _ := raw.Document.Get("copy")
	m, ok := copied.(*Mapping)
	if !ok {
		t.Fatalf("alias resolved to %T, want *Mapping", copied)
	}
	if typ, _ := m.Get("type"); typ != "string" {
		t.Errorf("alias type = %v, want string", typ)
	}
}

func TestDecode_AliasExpansionLimit(t *testing.T) {
	t.Parallel()

	// Each level references the previous anchor ten times.
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 9; i++ {
		fmt.Fprintf(&b, "l%d: &l%d [", i, i)
		for j := range 10 {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "*l%d", i-1)
		}
		b.WriteString("]\n")
	}

	_, err := Decode([]byte(b.String()), "bomb.yml")
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("Decode() error = %v, want ErrInvalidDescriptor", err)
	}
	if !strings.Contains(err.Error(), "expands to more than") {
		t.Errorf("Decode() error = %q, want expansion limit message", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"syntax":         "a: [",
		"scalar":         "just text",
		"sequence":       "- a",
		"empty":          "",
		"non-string key": "? [a, b]\n: c\n",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(doc), "bad.yml")
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("Decode() error = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	raw := FromMap("mem", map[string]any{
		"cwlVersion":  "v1.2",
		"class":       "CommandLineTool",
		"baseCommand": []string{"echo"},
		"inputs": []any{
			map[string]any{"id": "msg", "type": "string"},
		},
	})

	tool, err := NewTool(raw)
	if err != nil {
		t.Fatalf("NewTool() error = %v", err)
	}
	got, err := tool.Command(Values{"msg": "hello"})
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if got != "echo hello" {
		t.Errorf("Command() = %q, want %q", got, "echo hello")
	}
}
