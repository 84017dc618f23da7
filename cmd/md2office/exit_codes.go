package main

import (
	"errors"
	"os"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/config"
)

// Exit codes for md2office CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, theme, or validation
	ExitIO       = 3 // File not found, permission denied, listen failure
	ExitEncoding = 4 // Document encoder failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Encoder errors (exit 4)
	if errors.Is(err, md2office.ErrEncoding) {
		return ExitEncoding
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) ||
		errors.Is(err, ErrSameFile) ||
		errors.Is(err, ErrListen) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2office.ErrInvalidSyntax) ||
		errors.Is(err, md2office.ErrInvalidTheme) ||
		errors.Is(err, md2office.ErrThemeNotFound) ||
		errors.Is(err, md2office.ErrStyleNotFound) ||
		errors.Is(err, md2office.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
