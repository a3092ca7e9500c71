package dialogue

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode_PlainUTF8(t *testing.T) {
	got, err := Decode(bytes.NewReader([]byte("hi\\there friend\n")))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "hi\\there friend\n" {
		t.Errorf("got %q", got)
	}
}

func TestDecode_StripsUTF8BOM(t *testing.T) {
	got, err := Decode(bytes.NewReader([]byte("\xef\xbb\xbfla la ")))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "la la " {
		t.Errorf("got %q, want 'la la '", got)
	}
}

func TestDecode_UTF16LE(t *testing.T) {
	// BOM, then "a b" in UTF-16LE.
	data := []byte{0xff, 0xfe, 'a', 0, ' ', 0, 'b', 0}
	got, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "a b" {
		t.Errorf("got %q, want 'a b'", got)
	}
}

func TestDecode_NormalizesToNFC(t *testing.T) {
	// "e" followed by a combining acute accent.
	got, err := Decode(bytes.NewReader([]byte("cafe\u0301 ")))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "caf\u00e9 " {
		t.Errorf("got %q, want precomposed form", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.txt")
	if err := os.WriteFile(path, []byte("one two\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != "one two\n" {
		t.Errorf("got %q", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
