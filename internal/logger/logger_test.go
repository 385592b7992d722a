package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)

	l.Info("hello %s", "world")
	l.Error("boom")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "hello world") {
		t.Errorf("info output missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "boom") {
		t.Errorf("error output missing: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug should be suppressed when not verbose: %q", out)
	}
}

func TestLoggerVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)

	l.Debug("before")
	l.SetVerbose(true)
	l.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("debug printed while not verbose: %q", out)
	}
	if !strings.Contains(out, "[DEBUG]") || !strings.Contains(out, "after") {
		t.Errorf("debug output missing after SetVerbose: %q", out)
	}
}
