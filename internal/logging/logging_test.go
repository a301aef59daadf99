// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, err := New(tt.level, &buf)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.level, err)
			}
			logger.Debug("debug record", "tool", "wc")
			logger.Warn("warn record")

			out := buf.String()
			if got := strings.Contains(out, "debug record"); got != tt.wantDebug {
				t.Errorf("debug written = %v, want %v (%q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "warn record"); got != tt.wantWarn {
				t.Errorf("warn written = %v, want %v (%q)", got, tt.wantWarn, out)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Error("New() should reject an unknown level")
	}
}

func TestNew_StructuredFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("info", &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("task submitted", "id", "abc")
	if out := buf.String(); !strings.Contains(out, "id=abc") || !strings.Contains(out, "cwltool") {
		t.Errorf("unexpected record %q", out)
	}
}
