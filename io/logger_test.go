package kliio

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()
	return NewLogger(m), &out, &errOut
}

func TestLogger_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   LogFormat
		expected string
	}{
		{"circles", LogFormatCircles, "🔵 hello\n"},
		{"symbols", LogFormatSymbols, "◆ hello\n"},
		{"tagged", LogFormatTagged, "[INFO] hello\n"},
		{"plain", LogFormatPlain, "hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, _ := newTestLogger()
			l.WithFormat(tt.format).Info("hello")
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestLogger_StreamSelection(t *testing.T) {
	l, out, errOut := newTestLogger()
	l.WithFormat(LogFormatTagged)

	l.Info("i")
	l.Success("s")
	l.Warning("w")
	l.Error("e %d", 1)

	if got := out.String(); got != "[INFO] i\n[SUCCESS] s\n" {
		t.Errorf("Unexpected stdout: %q", got)
	}
	if got := errOut.String(); got != "[WARN] w\n[ERROR] e 1\n" {
		t.Errorf("Unexpected stderr: %q", got)
	}
}

func TestLogger_ErrorsToStdout(t *testing.T) {
	l, out, errOut := newTestLogger()
	l.ErrorsToStderr(false).Error("boom")
	if !strings.Contains(out.String(), "boom") || errOut.Len() != 0 {
		t.Errorf("Expected error on stdout, got out=%q err=%q", out.String(), errOut.String())
	}
}

func TestLogger_MinLevel(t *testing.T) {
	l, out, _ := newTestLogger()
	l.Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("Expected debug to be dropped by default, got %q", out.String())
	}
	l.WithLevel(LevelDebug).WithFormat(LogFormatTagged).Debug("shown")
	if out.String() != "[DEBUG] shown\n" {
		t.Errorf("Expected debug output, got %q", out.String())
	}
}

func TestLogger_Color(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(New().WithOut(&out).ForceColor()).WithFormat(LogFormatPlain)
	l.Info("x")
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("Expected ANSI escape with forced color, got %q", out.String())
	}
}

func TestLogger_WhitespaceMessage(t *testing.T) {
	l, out, _ := newTestLogger()
	l.Info("   ")
	if out.String() != "   \n" {
		t.Errorf("Expected whitespace to pass through, got %q", out.String())
	}
}

func TestLogger_Timestamp(t *testing.T) {
	l, out, _ := newTestLogger()
	l.WithFormat(LogFormatTagged).WithTimestamp(true).WithTimeFormat("2006").Info("t")
	if !strings.HasPrefix(out.String(), "[INFO] [") || !strings.HasSuffix(out.String(), "] t\n") {
		t.Errorf("Unexpected timestamped output: %q", out.String())
	}
}

func TestLogLevel_String(t *testing.T) {
	if LevelWarning.String() != "WARN" || LogLevel(99).String() != "UNKNOWN" {
		t.Errorf("Unexpected level names")
	}
}
