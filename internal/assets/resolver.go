package assets

import (
	"errors"

	"github.com/alnah/go-md2office/internal/theme"
)

// Resolver combines a custom loader with the embedded one. Custom assets win;
// a custom miss falls back to the embedded asset of the same name.
type Resolver struct {
	custom   Loader // nil without a custom path
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath uses embedded
// assets only; an invalid one is an error.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadTheme returns theme YAML, custom first.
func (r *Resolver) LoadTheme(name string) ([]byte, error) {
	return withFallback(r, func(l Loader) ([]byte, error) { return l.LoadTheme(name) })
}

// LoadStyle returns CSS, custom first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return withFallback(r, func(l Loader) (string, error) { return l.LoadStyle(name) })
}

// Theme loads and parses a theme. The file is decoded over the built-in
// default, so a partial theme file is valid.
func (r *Resolver) Theme(name string) (*theme.Theme, error) {
	data, err := r.LoadTheme(name)
	if err != nil {
		return nil, err
	}
	return theme.Parse(data)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

func withFallback[T any](r *Resolver, load func(Loader) (T, error)) (T, error) {
	if r.custom == nil {
		return load(r.embedded)
	}

	v, err := load(r.custom)
	if err == nil {
		return v, nil
	}
	// Validation and I/O errors are not masked by the fallback.
	if !isNotFoundError(err) {
		return v, err
	}
	return load(r.embedded)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrThemeNotFound)
}

var _ Loader = (*Resolver)(nil)
