package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	md2office "github.com/alnah/go-md2office"
)

// testEnv returns an Environment writing to buffers, with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return now },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// mockExporter records inputs and returns "out:" + content.
type mockExporter struct {
	mu    sync.Mutex
	calls []md2office.Input
	err   error
}

func (m *mockExporter) Export(in md2office.Input) (*md2office.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, in)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return &md2office.Result{
		Filename:    "x." + string(in.Format),
		ContentType: md2office.ContentTypeText,
		Data:        []byte("out:" + in.Content),
	}, nil
}

func (m *mockExporter) inputs() []md2office.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]md2office.Input(nil), m.calls...)
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}
