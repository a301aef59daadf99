// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file")
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{"operation only", &ActionableError{Operation: "load config"}, "failed to load config"},
		{"with resource", &ActionableError{Operation: "load descriptor", Resource: "wc.cwl"}, "failed to load descriptor: wc.cwl"},
		{"with cause", &ActionableError{Operation: "load descriptor", Resource: "wc.cwl", Cause: cause}, "failed to load descriptor: wc.cwl: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := WrapWithOperation(fmt.Errorf("read: %w", sentinel), "load descriptor")
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should find the wrapped sentinel")
	}
	if WrapWithOperation(nil, "noop") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("write config").
		WithResource("/etc/cwltool/config.cue").
		WithSuggestion("Check the directory permissions").
		WithSuggestion("Set --config to a writable path").
		Wrap(fmt.Errorf("open: %w", root)).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "\n  • Check the directory permissions") {
		t.Errorf("Format(false) missing suggestion: %q", short)
	}
	if strings.Contains(short, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain: %q", short)
	}

	verbose := err.Format(true)
	for _, want := range []string{"Error chain:", "1. open: permission denied", "2. permission denied"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("Format(true) missing %q: %q", want, verbose)
		}
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
	if err := NewErrorContext().WithOperation("run tool").BuildError(); err == nil {
		t.Error("BuildError() with operation should not be nil")
	}
}
