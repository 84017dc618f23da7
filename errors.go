package md2office

import (
	"errors"

	"github.com/alnah/go-md2office/internal/assets"
	"github.com/alnah/go-md2office/internal/theme"
)

// Sentinel errors for library operations.
var (
	// ErrEncoding indicates an artifact could not be serialized. It is the
	// only error Export returns for well-formed calls.
	ErrEncoding = errors.New("encoding failed")

	// ErrInvalidSyntax indicates an Input.Syntax value outside plain,
	// markdown and html.
	ErrInvalidSyntax = errors.New("invalid input syntax")

	// ErrInvalidTheme indicates a theme value is out of range or malformed.
	ErrInvalidTheme = theme.ErrInvalidTheme

	// Asset loading errors.
	ErrThemeNotFound    = assets.ErrThemeNotFound
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
