// Package fileutil provides file, path and file-name utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// pathSeparators are mapped to hyphens so a slug never names a directory.
var pathSeparators = strings.NewReplacer("/", "-", "\\", "-")

// Slugify lowercases s and replaces each whitespace run and each path
// separator with a hyphen. Nothing else is removed, so accented letters and
// punctuation survive: "Plan de Clase" -> "plan-de-clase",
// " Día 1 " -> "-día-1-", "a/b" -> "a-b".
func Slugify(s string) string {
	// A Caser is stateful, so one is made per call.
	lower := cases.Lower(language.Und).String(s)
	return pathSeparators.Replace(whitespaceRun.ReplaceAllString(lower, "-"))
}

// WriteFile writes data to path through a temporary file in the same
// directory, renamed into place once complete. Parent directories are created.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".md2office-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReplaceExt returns path with its extension replaced by "."+extension.
func ReplaceExt(path, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + extension, nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./sunset.yaml" -> true (relative path)
//   - "/absolute/theme.yaml" -> true (absolute)
//   - "C:\themes\sunset.yaml" -> true (Windows)
//   - "my-theme" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
