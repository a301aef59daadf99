// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"slices"
	"testing"

	"github.com/invowk/cwltool/pkg/cwl"
)

func TestNames(t *testing.T) {
	t.Parallel()

	want := []string{"cat", "find", "touch", "wc"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLookup_AllBundledToolsAreValid(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tool, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", name, err)
			}
			if tool.BaseCommand() != name {
				t.Errorf("BaseCommand() = %q, want %q", tool.BaseCommand(), name)
			}
		})
	}
}

func TestLookup_Templates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"wc", "COMMAND TEMPLATE:\nwc <text_file>"},
		{"cat", "COMMAND TEMPLATE:\ncat <files_1 ... files_n>"},
		{"find", "COMMAND TEMPLATE:\nfind <dir> -name <name> [-maxdepth <maxdepth>]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tool, err := Lookup(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if got := tool.CommandTemplate(); got != tt.want {
				t.Errorf("CommandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookup_TouchOutputs(t *testing.T) {
	t.Parallel()

	tool, err := Lookup("touch")
	if err != nil {
		t.Fatal(err)
	}
	out, ok := tool.Output("output_files")
	if !ok {
		t.Fatal("touch should declare output_files")
	}
	if out.Type != cwl.OutputFile || !out.Array {
		t.Errorf("output_files = %+v, want File[]", out)
	}
}

func TestLookup_NotFound(t *testing.T) {
	t.Parallel()

	if _, err := Lookup("rm"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Lookup(rm) error = %v, want ErrToolNotFound", err)
	}
	if _, err := Source("../registry"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Source(../registry) error = %v, want ErrToolNotFound", err)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    []string
	}{
		{"*", []string{"cat", "find", "touch", "wc"}},
		{"c*", []string{"cat"}},
		{"{wc,touch}", []string{"touch", "wc"}},
		{"zip", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			got, err := Match(tt.pattern)
			if err != nil {
				t.Fatalf("Match(%q) error = %v", tt.pattern, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}

	if _, err := Match("[a-"); err == nil {
		t.Error("Match() should reject a malformed pattern")
	}
}
