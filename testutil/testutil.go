// Package testutil provides test helpers: workspace fixtures, build IDs,
// and a recording log listener.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// WriteTree writes a set of files (slash-separated relative path to
// content) under root, creating directories as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

// NewBuildID returns a random build identifier.
func NewBuildID(t *testing.T) string {
	t.Helper()

	id, err := nanoid.Generate("0123456789abcdef", 12)
	if err != nil {
		t.Fatalf("generate build ID: %v", err)
	}
	return id
}
