package assets

// Loader loads raw theme and stylesheet sources by name.
type Loader interface {
	// LoadTheme returns theme YAML by name (without .yaml extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadTheme(name string) ([]byte, error)

	// LoadStyle returns CSS by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// Built-in asset names.
const (
	DefaultThemeName = "default"
	DefaultStyleName = "preview"
)
