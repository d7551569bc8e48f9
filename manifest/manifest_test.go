package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestWriteAndVerify(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app.jar":        "jar-bytes",
		"docs/notes.txt": "notes",
	})

	m, err := Write(dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(m.Files) != 2 {
		t.Errorf("manifest has %d files, want 2", len(m.Files))
	}
	if m.Algorithm != "blake2b-256" {
		t.Errorf("algorithm = %q", m.Algorithm)
	}

	if err := Verify(dir); err != nil {
		t.Errorf("Verify on untouched dir: %v", err)
	}
}

func TestWrite_ExcludesItself(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.bin": "x"})

	if _, err := Write(dir); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	m, err := Write(dir)
	if err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if _, ok := m.Files[FileName]; ok {
		t.Error("manifest must not record itself")
	}
}

func TestVerify_DetectsTamperedFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.bin": "original"})

	if _, err := Write(dir); err != nil {
		t.Fatalf("Write: %v", err)
	}
	writeFiles(t, dir, map[string]string{"a.bin": "tampered"})

	err := Verify(dir)
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify = %v, want ErrMismatch", err)
	}
}

func TestVerify_DetectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.bin": "x"})

	if _, err := Write(dir); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "a.bin")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	err := Verify(dir)
	if !errors.Is(err, ErrMissingFile) {
		t.Errorf("Verify = %v, want ErrMissingFile", err)
	}
}

func TestRead_NotFound(t *testing.T) {
	_, err := Read(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Read = %v, want ErrNotFound", err)
	}
}

func TestReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"x/y.bin": "payload"})

	wrote, err := Write(dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	read, err := Read(dir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if read.Files["x/y.bin"] != wrote.Files["x/y.bin"] {
		t.Error("digest changed across write/read")
	}
}
