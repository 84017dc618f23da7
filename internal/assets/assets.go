package assets

import (
	"strings"

	"github.com/alnah/go-md2office/internal/theme"
)

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded stylesheet by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// DefaultTheme parses the embedded default theme.
func DefaultTheme() (*theme.Theme, error) {
	data, err := defaultLoader.LoadTheme(DefaultThemeName)
	if err != nil {
		return nil, err
	}
	return theme.Parse(data)
}

// ThemeNames lists the embedded theme names, sorted.
func ThemeNames() []string {
	entries, err := themes.ReadDir("themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}
