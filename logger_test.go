package displaylist

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	Logger().Info("capture complete", "key", "minimap")
	if got := buf.String(); !strings.Contains(got, "capture complete") {
		t.Errorf("log output %q missing message", got)
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Logger().Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("log output after SetLogger(nil) = %q, want empty", buf.String())
	}
}
