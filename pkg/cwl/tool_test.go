// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func parseForTest(t *testing.T, doc string) *Tool {
	t.Helper()

	tool, err := ParseBytes([]byte(doc), "tool.cwl")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	return tool
}

func TestParse_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "find.cwl")
	if err := os.WriteFile(path, []byte(findDescriptor), 0o644); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}

	tool, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if tool.Version() != "v1.2" {
		t.Errorf("Version() = %q, want %q", tool.Version(), "v1.2")
	}
	if tool.FileName() != "find.cwl" {
		t.Errorf("FileName() = %q, want %q", tool.FileName(), "find.cwl")
	}
	if tool.BaseCommand() != "find" {
		t.Errorf("BaseCommand() = %q, want %q", tool.BaseCommand(), "find")
	}
	if got := tool.Descriptor().Extra["doc"]; got != "Search for files in a directory hierarchy" {
		t.Errorf("Extra[doc] = %v", got)
	}

	ids := make([]string, 0, 3)
	for _, arg := range tool.Inputs() {
		ids = append(ids, arg.ID)
	}
	if strings.Join(ids, ",") != "dir,name,maxdepth" {
		t.Errorf("Inputs() order = %v, want [dir name maxdepth]", ids)
	}
	if out, ok := tool.Output("example_out"); !ok || out.Type != OutputStdout {
		t.Errorf("Output(example_out) = %+v, %v", out, ok)
	}
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.cwl")); err == nil {
		t.Fatal("Parse() should fail for a missing file")
	}
}

func TestParseBytes_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not yaml":    "cwlVersion: [",
		"not mapping": "- a\n- b\n",
		"empty":       "",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBytes([]byte(doc), "bad.cwl")
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("ParseBytes() error = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestTool_Command(t *testing.T) {
	t.Parallel()

	tool := parseForTest(t, findDescriptor)

	tests := []struct {
		name     string
		values   Values
		expected string
	}{
		{
			name:     "default used",
			values:   Values{"dir": ".", "name": "*.go"},
			expected: "find . -name *.go -maxdepth 3",
		},
		{
			name:     "value overrides default",
			values:   Values{"dir": "/src", "name": "x", "maxdepth": 1},
			expected: "find /src -name x -maxdepth 1",
		},
		{
			name:     "nil value falls back to default",
			values:   Values{"dir": ".", "name": "x", "maxdepth": nil},
			expected: "find . -name x -maxdepth 3",
		},
		{
			name:     "unknown values ignored",
			values:   Values{"dir": ".", "name": "x", "example_out": "out.txt", "extra": true},
			expected: "find . -name x -maxdepth 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tool.Command(tt.values)
			if err != nil {
				t.Fatalf("Command() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Command() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTool_CommandMissingArgument(t *testing.T) {
	t.Parallel()

	tool := parseForTest(t, findDescriptor)

	_, err := tool.Command(Values{})
	if !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("Command({}) error = %v, want ErrMissingArgument", err)
	}

	var missing *MissingArgumentError
	if !errors.As(err, &missing) || missing.ID != "dir" {
		t.Errorf("expected MissingArgumentError for dir, got %v", err)
	}
	if err.Error() != "missing required value for argument: dir" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestTool_CommandDefaultAndOptional(t *testing.T) {
	t.Parallel()

	doc := `
cwlVersion: v1.2
class: CommandLineTool
baseCommand: [ls, -1]
inputs:
  all:
    type: boolean
    inputBinding:
      prefix: -a
  color:
    type: string?
    inputBinding:
      prefix: --color=
      separate: false
  sort:
    type: string?
    default: size
    inputBinding:
      prefix: --sort
`
	tool := parseForTest(t, doc)

	// A non-optional boolean without a default must be supplied.
	if _, err := tool.Command(Values{}); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("Command({}) error = %v, want ErrMissingArgument", err)
	}

	got, err := tool.Command(Values{"all": false})
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if want := "ls -1 --sort size"; got != want {
		t.Errorf("Command() = %q, want %q", got, want)
	}

	got, err = tool.Command(Values{"all": true, "color": "never"})
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if want := "ls -1 -a --color=never --sort size"; got != want {
		t.Errorf("Command() = %q, want %q", got, want)
	}
}

func TestTool_CommandFalsyDefaults(t *testing.T) {
	t.Parallel()

	doc := `
cwlVersion: v1.2
class: CommandLineTool
baseCommand: find
inputs:
  dir:
    type: string
    inputBinding:
      position: 1
  maxdepth:
    type: int?
    default: 0
    inputBinding:
      prefix: -maxdepth
  verbose:
    type: boolean
    default: false
    inputBinding:
      prefix: -v
  ratio:
    type: double
    default: 1.0
    inputBinding:
      prefix: -r
`
	tool := parseForTest(t, doc)

	// A false default on a required boolean is not a value.
	if _, err := tool.Command(Values{"dir": "."}); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("Command() error = %v, want ErrMissingArgument", err)
	}

	got, err := tool.Command(Values{"dir": ".", "verbose": false})
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if want := "find . -r 1.0"; got != want {
		t.Errorf("Command() = %q, want %q", got, want)
	}
}

func TestTool_CommandTemplate(t *testing.T) {
	t.Parallel()

	tool := parseForTest(t, findDescriptor)
	want := "COMMAND TEMPLATE:\nfind <dir> -name <name> [-maxdepth <maxdepth>]"
	if got := tool.CommandTemplate(); got != want {
		t.Errorf("CommandTemplate() = %q, want %q", got, want)
	}
}

func TestTool_String(t *testing.T) {
	t.Parallel()

	tool := parseForTest(t, findDescriptor)
	s := tool.String()

	// Keys keep document order.
	version := strings.Index(s, "cwlVersion")
	inputs := strings.Index(s, "inputs")
	dir := strings.Index(s, "dir:")
	maxdepth := strings.Index(s, "maxdepth:")
	if version < 0 || inputs < version || dir < inputs || maxdepth < dir {
		t.Errorf("String() lost key order:\n%s", s)
	}
}

func TestTool_ConcurrentCommand(t *testing.T) {
	t.Parallel()

	tool := parseForTest(t, findDescriptor)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := range 16 {
		wg.Add(1)
		go func(depth int) {
			defer wg.Done()
			got, err := tool.Command(Values{"dir": ".", "name": "x", "maxdepth": depth})
			if err != nil {
				errs <- err
				return
			}
			if !strings.HasSuffix(got, " "+stringify(depth)) {
				errs <- errors.New("unexpected command " + got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
