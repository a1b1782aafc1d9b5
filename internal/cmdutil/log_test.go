package cmdutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	var b bytes.Buffer
	NewLogger(&b, false, false).Info("hidden")
	if b.Len() != 0 {
		t.Fatalf("default level should drop info, got %q", b.String())
	}
	NewLogger(&b, true, false).Info("wrote dataset", "rows", 3)
	got := b.String()
	if !strings.Contains(got, "msg=\"wrote dataset\" rows=3") || strings.Contains(got, "time=") {
		t.Fatalf("unexpected verbose line %q", got)
	}
	b.Reset()
	NewLogger(&b, false, true).Warn("hidden")
	if b.Len() != 0 {
		t.Fatalf("quiet should drop warnings, got %q", b.String())
	}
}
