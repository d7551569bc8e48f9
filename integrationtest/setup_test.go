package integrationtest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/buildkeep"
	"github.com/randalmurphal/flowgraph/pkg/flowgraph"
)

// setupWorkspace creates a temporary workspace with typical build output.
func setupWorkspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"dist/app.tar.gz":   "compressed build output",
		"dist/app.sha256":   "abc123",
		"reports/junit.xml": "<testsuite/>",
		"src/main.go":       "package main",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

// setupContext creates a flowgraph.Context with buildkeep services configured.
func setupContext(t *testing.T, services *buildkeep.Services) flowgraph.Context {
	t.Helper()

	baseCtx := services.InjectAll(context.Background())
	return flowgraph.NewContext(baseCtx)
}
