package fileutil_test

// Notes:
// - WriteFile's write, close and rename error branches are not tested:
//   triggering those failures is platform-specific.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2office/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestSlugify - Download file names
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces", "Plan de Clase", "plan-de-clase"},
		{"whitespace runs collapse", "Unidad \t 3\n\nRepaso", "unidad-3-repaso"},
		{"accents survive", "Árboles Y Río", "árboles-y-río"},
		{"punctuation survives", "Clase: ¿1?", "clase:-¿1?"},
		{"slashes become hyphens", "../../etc/Pass Wd", "..-..-etc-pass-wd"},
		{"backslashes become hyphens", `Unidad\3`, "unidad-3"},
		{"edges keep hyphens", " Día 1 ", "-día-1-"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid extension docx", "docx", nil},
		{"valid extension pptx", "pptx", nil},
		{"empty extension", "", fileutil.ErrExtensionEmpty},
		{"forward slash path traversal", "../etc/passwd", fileutil.ErrExtensionPathTraversal},
		{"backslash path traversal", "..\\windows\\system32", fileutil.ErrExtensionPathTraversal},
		{"null byte injection", "docx\x00exe", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"lesson.md", "docx", "lesson.docx"},
		{"dir/slides.txt", "pptx", "dir/slides.pptx"},
		{"noext", "txt", "noext.txt"},
		{"a.b.c", "pdf", "a.b.pdf"},
	}
	for _, tt := range tests {
		got, err := fileutil.ReplaceExt(tt.path, tt.ext)
		if err != nil {
			t.Fatalf("ReplaceExt(%q, %q) error = %v", tt.path, tt.ext, err)
		}
		if got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}

	if _, err := fileutil.ReplaceExt("x.md", ""); !errors.Is(err, fileutil.ErrExtensionEmpty) {
		t.Errorf("ReplaceExt() with empty ext error = %v, want %v", err, fileutil.ErrExtensionEmpty)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "lesson.docx")

	if err := fileutil.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fileutil.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp file left behind?)", len(entries))
	}
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := fileutil.WriteFile(filepath.Join(blocker, "out.docx"), []byte("x")); err == nil {
		t.Error("WriteFile() under a regular file succeeded, want error")
	}
}

// ---------------------------------------------------------------------------
// TestFileExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file returns true", testFile, true},
		{"directory returns false", testDir, false},
		{"nonexistent path returns false", filepath.Join(tempDir, "nonexistent"), false},
		{"empty path returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"my-theme", false},
		{"./sunset.yaml", true},
		{"../shared/theme.yaml", true},
		{"/absolute/theme.yaml", true},
		{`C:\themes\sunset.yaml`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
