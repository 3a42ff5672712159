package kliio

import (
	"bytes"
	"os"
	"testing"
)

func TestIOManager_Writers(t *testing.T) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut)
	if m.Out() != &out || m.Err() != &errOut {
		t.Fatalf("writers not applied")
	}
	if m.IsTTY() {
		t.Errorf("Expected a buffer not to be a terminal")
	}
}

func TestIOManager_ColorOverrides(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{}).ColorAuto()

	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")
	if m.SupportsColor() {
		t.Errorf("NO_COLOR should disable color")
	}
	if !m.ForceColor().SupportsColor() {
		t.Errorf("ForceColor should win over NO_COLOR")
	}

	m.ColorAuto()
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	if !m.SupportsColor() {
		t.Errorf("FORCE_COLOR should enable color on a non-terminal")
	}
	if m.NoColor().SupportsColor() {
		t.Errorf("NoColor should win over FORCE_COLOR")
	}
}

func TestIOManager_NonTerminalNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	m := New().WithOut(&bytes.Buffer{})
	if m.SupportsColor() {
		t.Errorf("Expected no color for a non-terminal writer")
	}
}

func TestIOManager_FileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	defer f.Close()
	if New().WithOut(f).IsTTY() {
		t.Errorf("Expected a regular file not to be a terminal")
	}
}

func TestIOManager_WidthFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "101")
	m := New().WithOut(&bytes.Buffer{})
	if m.Width() != 101 {
		t.Errorf("Expected width 101, got %d", m.Width())
	}

	t.Setenv("COLUMNS", "")
	if m.Width() != 80 {
		t.Errorf("Expected default width 80, got %d", m.Width())
	}
}
