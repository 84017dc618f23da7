package md2office

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2office/internal/assets"
	"github.com/alnah/go-md2office/internal/theme"
)

// Asset name constants for built-in themes and styles.
const (
	// DefaultThemeName is the name of the built-in theme.
	DefaultThemeName = assets.DefaultThemeName

	// DefaultStyle is the name of the built-in preview stylesheet.
	DefaultStyle = assets.DefaultStyleName
)

// Theme holds palette, fonts, size tiers and geometry of exported artifacts.
type Theme = theme.Theme

// DefaultTheme returns a fresh copy of the built-in theme.
func DefaultTheme() *Theme {
	return theme.Default()
}

// ParseTheme decodes a YAML theme over the built-in one and validates it.
// Returns ErrInvalidTheme on malformed or out-of-range values.
func ParseTheme(data []byte) (*Theme, error) {
	return theme.Parse(data)
}

// AssetLoader defines the contract for loading themes and preview styles.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadTheme loads theme YAML by name (without .yaml extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadTheme(name string) ([]byte, error)

	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - themes/{name}.yaml for themes
//   - styles/{name}.css for preview styles
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return resolver, nil
}

// convertAssetError maps internal path errors to ErrInvalidAssetPath.
// Not-found errors are already the public sentinels.
func convertAssetError(err error) error {
	if errors.Is(err, assets.ErrInvalidBasePath) || errors.Is(err, assets.ErrPathTraversal) {
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return err
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return assets.ThemeNames()
}
