//nolint:testpackage // using package name 'kli' to access unexported fields for testing
package kli

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestIntParser(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"+3", 3, true},
		{"0xFF", 255, true},
		{"-0x10", -16, true},
		{" 12 ", 12, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"--1", 0, false},
		{"0x", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.raw), func(t *testing.T) {
			got, ok := IntParser(tt.raw).Value()
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.want, tt.ok, got, ok)
			}
			if !ok && IntParser(tt.raw).Hint() != HintInvalidFormat {
				t.Errorf("Expected hint %q", HintInvalidFormat)
			}
		})
	}
}

func TestFloatParser(t *testing.T) {
	if v, ok := FloatParser("3.14").Value(); !ok || v != 3.14 {
		t.Errorf("Expected 3.14, got %v", v)
	}
	if FloatParser("pi").OK() {
		t.Errorf("Expected 'pi' to be rejected")
	}
}

func TestDurationParser(t *testing.T) {
	if v, ok := DurationParser("1h30m").Value(); !ok || v != 90*time.Minute {
		t.Errorf("Expected 90m, got %v", v)
	}
	if DurationParser("soon").OK() {
		t.Errorf("Expected 'soon' to be rejected")
	}
}

func TestEnumParser(t *testing.T) {
	p := EnumParser("json", "yaml")
	if v, ok := p("yaml").Value(); !ok || v != "yaml" {
		t.Errorf("Expected yaml, got %q", v)
	}
	res := p("xml")
	if res.OK() || res.Hint() != "Must be one of: json, yaml." {
		t.Errorf("Unexpected result for xml: ok=%v hint=%q", res.OK(), res.Hint())
	}
}

func TestBoolParser(t *testing.T) {
	for _, raw := range []string{"1", "true", "YES", "on", "t"} {
		if v, ok := BoolParser(raw).Value(); !ok || !v {
			t.Errorf("Expected %q to be true", raw)
		}
	}
	for _, raw := range []string{"0", "false", "No", "off"} {
		if v, ok := BoolParser(raw).Value(); !ok || v {
			t.Errorf("Expected %q to be false", raw)
		}
	}
	if BoolParser("maybe").OK() {
		t.Errorf("Expected 'maybe' to be rejected")
	}
}

func TestParsed_HintEmptyOnSuccess(t *testing.T) {
	if Ok(1).Hint() != "" {
		t.Errorf("Expected empty hint on success")
	}
	if Fail[int]("nope").Hint() != "nope" {
		t.Errorf("Expected failure hint")
	}
}

func TestFileParsers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name   string
		parser ValueParser[string]
		raw    string
		hint   string
	}{
		{"file ok", FileParser, file, ""},
		{"file missing", FileParser, missing, HintNoSuchFile},
		{"file is dir", FileParser, dir, HintNoSuchFile},
		{"readable file", ReadableFileParser, file, ""},
		{"writable file", WritableFileParser, file, ""},
		{"readable file missing", ReadableFileParser, missing, HintNoSuchFile},
		{"dir ok", DirectoryParser, dir, ""},
		{"dir is file", DirectoryParser, file, HintNoSuchDirectory},
		{"readable dir", ReadableDirectoryParser, dir, ""},
		{"writable dir", WritableDirectoryParser, dir, ""},
		{"writable dir missing", WritableDirectoryParser, missing, HintNoSuchDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.parser(tt.raw)
			if tt.hint == "" {
				if v, ok := res.Value(); !ok || v != tt.raw {
					t.Errorf("Expected %q to be accepted, got hint %q", tt.raw, res.Hint())
				}
				return
			}
			if res.OK() || res.Hint() != tt.hint {
				t.Errorf("Expected hint %q, got ok=%v hint=%q", tt.hint, res.OK(), res.Hint())
			}
		})
	}
}

func TestFileParsers_Permissions(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	readOnly := filepath.Join(dir, "ro.txt")
	if err := os.WriteFile(readOnly, []byte("x"), 0o400); err != nil {
		t.Fatalf("write: %v", err)
	}

	if res := WritableFileParser(readOnly); res.OK() || res.Hint() != HintNotWritable {
		t.Errorf("Expected %q, got ok=%v hint=%q", HintNotWritable, res.OK(), res.Hint())
	}
	if res := RandomAccessFileParser(readOnly); res.OK() || res.Hint() != HintNotWritable {
		t.Errorf("Expected %q, got ok=%v hint=%q", HintNotWritable, res.OK(), res.Hint())
	}
}

func TestRandomAccessFileParser(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rw.bin")
	if err := os.WriteFile(file, []byte("abc"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, ok := RandomAccessFileParser(file).Value()
	if !ok {
		t.Fatalf("Expected file to open")
	}
	defer f.Close()
	if _, err := f.WriteAt([]byte("Z"), 1); err != nil {
		t.Errorf("Expected a writable handle: %v", err)
	}

	if RandomAccessFileParser(filepath.Join(t.TempDir(), "nope")).Hint() != HintNoSuchFile {
		t.Errorf("Expected %q for a missing file", HintNoSuchFile)
	}
}
