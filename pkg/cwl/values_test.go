// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFlagValues(t *testing.T) {
	t.Parallel()

	values, err := ParseFlagValues([]string{
		"--dir=.",
		"--name=*.go",
		"--filenames=[a.txt, b.txt]",
		"--quoted=['x', 'y']",
		"-single=v",
		"--expr=a=b",
		"--empty=",
	})
	if err != nil {
		t.Fatalf("ParseFlagValues() error = %v", err)
	}

	want := Values{
		"dir":       ".",
		"name":      "*.go",
		"filenames": []any{"a.txt", "b.txt"},
		"quoted":    []any{"x", "y"},
		"single":    "v",
		"expr":      "a=b",
		"empty":     "",
	}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("ParseFlagValues() = %#v, want %#v", values, want)
	}
}

func TestParseFlagValues_Invalid(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"dir=.", "--dir", "--=x", "--list=[a, [b]"} {
		t.Run(arg, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseFlagValues([]string{arg}); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("ParseFlagValues(%q) error = %v, want ErrInvalidValue", arg, err)
			}
		})
	}

	// Without the closing bracket the value is not a list.
	values, err := ParseFlagValues([]string{"--list=[a, b"})
	if err != nil || values["list"] != "[a, b" {
		t.Errorf("ParseFlagValues() = %v, %v; want the raw string", values, err)
	}
}

func TestLoadValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yml := filepath.Join(dir, "values.yml")
	if err := os.WriteFile(yml, []byte("dir: .\nmaxdepth: 2\nfiles:\n  - a\n  - b\n"), 0o644); err != nil {
		t.Fatalf("failed to write values: %v", err)
	}
	jsonPath := filepath.Join(dir, "values.json")
	if err := os.WriteFile(jsonPath, []byte(`{"dir": ".", "maxdepth": 2, "files": ["a", "b"]}`), 0o644); err != nil {
		t.Fatalf("failed to write values: %v", err)
	}

	want := Values{"dir": ".", "maxdepth": 2, "files": []any{"a", "b"}}
	for _, path := range []string{yml, jsonPath} {
		values, err := LoadValues(path)
		if err != nil {
			t.Fatalf("LoadValues(%s) error = %v", path, err)
		}
		if !reflect.DeepEqual(values, want) {
			t.Errorf("LoadValues(%s) = %#v, want %#v", path, values, want)
		}
	}

	if _, err := LoadValues(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("LoadValues() should fail for a missing file")
	}
}

func TestDecodeValues(t *testing.T) {
	t.Parallel()

	values, err := DecodeValues(nil)
	if err != nil || len(values) != 0 {
		t.Errorf("DecodeValues(nil) = %v, %v; want empty", values, err)
	}

	if _, err := DecodeValues([]byte("- a\n- b\n")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("DecodeValues(list) error = %v, want ErrInvalidValue", err)
	}
}

func TestCoerceFiles(t *testing.T) {
	t.Parallel()

	doc := `
cwlVersion: v1.2
class: CommandLineTool
baseCommand: cat
inputs:
  files:
    type: File[]
  single:
    type: File?
  label:
    type: string?
outputs:
  out:
    type: stdout
  copy:
    type: File
`
	tool := parseForTest(t, doc)
	ready := NewFile("ready.txt")

	in := Values{
		"files":  []any{"a.txt", map[string]any{"class": "File", "location": "file:///tmp/b.txt"}, ready},
		"single": map[string]any{"class": "File", "path": "s.txt"},
		"label":  "plain",
		"out":    "out.txt",
		"copy":   "copy.txt",
	}
	got := CoerceFiles(tool, in)

	want := Values{
		"files":  []any{NewFile("a.txt"), NewFile("/tmp/b.txt"), ready},
		"single": NewFile("s.txt"),
		"label":  "plain",
		"out":    "out.txt",
		"copy":   NewFile("copy.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CoerceFiles() = %#v, want %#v", got, want)
	}
	if _, isFile := in["copy"].(File); isFile {
		t.Error("CoerceFiles() must not modify its input")
	}

	inv, err := tool.Assemble(got)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if inv.Command != "cat a.txt /tmp/b.txt ready.txt s.txt plain" {
		t.Errorf("Command = %q", inv.Command)
	}
}
