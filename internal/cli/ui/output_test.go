package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := Output, color.NoColor
	Output, color.NoColor = &buf, true
	t.Cleanup(func() { Output, color.NoColor = prevOut, prevNoColor })
	return &buf
}

func TestPrintMarked(t *testing.T) {
	tests := []struct {
		name  string
		print func(string, ...interface{})
		want  string
	}{
		{name: "success", print: PrintSuccess, want: "✓ Logged out 1\n"},
		{name: "error", print: PrintError, want: "✗ Logged out 1\n"},
		{name: "warning", print: PrintWarning, want: "⚠ Logged out 1\n"},
		{name: "info", print: PrintInfo, want: "ℹ Logged out 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			tt.print("Logged out %d", 1)
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrintHintAndBoxes(t *testing.T) {
	buf := captureOutput(t)

	PrintHint("pgtctl logout", "Forget this session")
	PrintSuccessBox("Signed in", "_id: u1")
	PrintPortalBanner()

	out := buf.String()
	for _, want := range []string{"pgtctl logout", "# Forget this session", "Signed in", "_id: u1", PortalTitle} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
