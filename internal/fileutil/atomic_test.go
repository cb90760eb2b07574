package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	report := filepath.Join(tmpDir, "report.json")

	if err := WriteAtomic(report, 0o644, writeString(`{"tournaments":3}`)); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != `{"tournaments":3}` {
		t.Errorf("File content mismatch: got %q", string(data))
	}

	info, err := os.Stat(report)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("Permission mismatch: got %v, want %v", info.Mode().Perm(), os.FileMode(0o644))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "report.json" {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestWriteAtomicOverwrite(t *testing.T) {
	t.Parallel()

	report := filepath.Join(t.TempDir(), "report.json")
	if err := WriteAtomic(report, 0o644, writeString("first run")); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}
	if err := WriteAtomic(report, 0o644, writeString("second run")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "second run" {
		t.Errorf("File content mismatch: got %q, want %q", string(data), "second run")
	}
}

func TestWriteAtomicKeepsOldFileOnFailure(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	report := filepath.Join(tmpDir, "report.json")
	if err := WriteAtomic(report, 0o644, writeString("good")); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}

	boom := errors.New("encoder failed")
	err := WriteAtomic(report, 0o644, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected write error, got %v", err)
	}

	data, _ := os.ReadFile(report)
	if string(data) != "good" {
		t.Errorf("Old content lost: got %q", string(data))
	}
	entries, _ := os.ReadDir(tmpDir)
	if len(entries) != 1 {
		t.Errorf("Temp file left behind: %d entries", len(entries))
	}
}

func TestWriteAtomicInvalidDir(t *testing.T) {
	t.Parallel()

	err := WriteAtomic(filepath.Join(t.TempDir(), "missing", "report.json"), 0o644, writeString("data"))
	if err == nil {
		t.Error("Expected error when writing to non-existent directory")
	}
}
