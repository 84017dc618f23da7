package md2office

import (
	"fmt"
	"os"

	"github.com/alnah/go-md2office/internal/fileutil"
	"github.com/alnah/go-md2office/internal/markdown"
	"github.com/alnah/go-md2office/internal/preview"
	"github.com/alnah/go-md2office/internal/theme"
)

// Converter turns Input into artifacts. Create with NewConverter and share
// freely: it holds only read-only configuration and is safe for concurrent use.
type Converter struct {
	cfg     converterConfig
	theme   *theme.Theme
	parser  *markdown.Parser
	html    *markdown.HTMLConverter
	preview *preview.Renderer
}

// converterConfig holds options before they are resolved.
type converterConfig struct {
	theme     *Theme
	themeName string
	style     string
	assetPath string
	loader    AssetLoader
}

// Option configures a Converter.
type Option func(*converterConfig)

// WithTheme uses th for every export. It takes precedence over WithThemeName.
func WithTheme(th *Theme) Option {
	return func(c *converterConfig) {
		c.theme = th
	}
}

// WithThemeName selects a theme by name (resolved by the asset loader) or by
// file path (any value containing a path separator).
func WithThemeName(nameOrPath string) Option {
	return func(c *converterConfig) {
		c.themeName = nameOrPath
	}
}

// WithStyle selects the preview stylesheet by name.
func WithStyle(name string) Option {
	return func(c *converterConfig) {
		c.style = name
	}
}

// WithAssetPath loads themes and styles from dir, falling back to the
// embedded assets. Ignored when WithAssetLoader is also given.
func WithAssetPath(dir string) Option {
	return func(c *converterConfig) {
		c.assetPath = dir
	}
}

// WithAssetLoader loads themes and styles from a custom backend.
func WithAssetLoader(l AssetLoader) Option {
	return func(c *converterConfig) {
		c.loader = l
	}
}

// NewConverter creates a Converter with the built-in theme unless options
// say otherwise. Returns an error if an asset cannot be loaded or a theme
// is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:    converterConfig{style: DefaultStyle},
		parser: markdown.NewParser(),
		html:   markdown.NewHTMLConverter(),
	}
	for _, opt := range opts {
		opt(&c.cfg)
	}

	loader := c.cfg.loader
	if loader == nil {
		var err error
		loader, err = NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
	}

	th, err := c.resolveTheme(loader)
	if err != nil {
		return nil, err
	}
	c.theme = th

	css, err := loader.LoadStyle(c.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", c.cfg.style, err)
	}
	c.preview = preview.NewRenderer(th, css)

	return c, nil
}

// resolveTheme picks the explicit theme, then a named or file theme, then
// the loader's default theme.
func (c *Converter) resolveTheme(loader AssetLoader) (*theme.Theme, error) {
	if c.cfg.theme != nil {
		if err := c.cfg.theme.Validate(); err != nil {
			return nil, err
		}
		return c.cfg.theme, nil
	}

	name := c.cfg.themeName
	if name == "" {
		name = DefaultThemeName
	}

	var data []byte
	var err error
	if fileutil.IsFilePath(name) {
		data, err = os.ReadFile(name) // #nosec G304 -- user-provided path
	} else {
		data, err = loader.LoadTheme(name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	th, err := theme.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	return th, nil
}

// Theme returns a copy of the resolved theme.
func (c *Converter) Theme() *Theme {
	cp := *c.theme
	cp.Slide.Decorations = append([]theme.Decoration(nil), c.theme.Slide.Decorations...)
	return &cp
}
