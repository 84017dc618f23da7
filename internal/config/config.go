package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2office/internal/fileutil"
	"github.com/alnah/go-md2office/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxThemeNameLength = 100  // "default", "sunset"
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxAddrLength      = 255  // host:port
	MaxFormatLength    = 10   // "docx", "markdown"
)

// MaxWorkers caps the batch worker pool.
const MaxWorkers = 16

// DefaultMaxBodyBytes bounds HTTP request bodies when the config sets none.
const DefaultMaxBodyBytes = 4 << 20

// Config holds all configuration for the CLI and the export server.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Theme  string       `yaml:"theme"` // Theme name or path (empty = default)
	Assets AssetsConfig `yaml:"assets"`
	Server ServerConfig `yaml:"server"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Syntax     string `yaml:"syntax"`     // "plain", "markdown", "html" (empty = from file extension)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Format     string `yaml:"format"`     // "docx", "pptx", "pdf", "txt", "html" (empty = docx)
	Workers    int    `yaml:"workers"`    // 0 = GOMAXPROCS
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ServerConfig defines HTTP export server options.
type ServerConfig struct {
	Addr         string `yaml:"addr"`         // Listen address (default ":8080")
	MaxBodyBytes int64  `yaml:"maxBodyBytes"` // 0 = DefaultMaxBodyBytes
}

var (
	validFormats  = []string{"docx", "pptx", "pdf", "txt", "html"}
	validSyntaxes = []string{"plain", "markdown", "html"}
)

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("theme", c.Theme, MaxThemeNameLength); err != nil {
		if !fileutil.IsFilePath(c.Theme) {
			return err
		}
		if err := validateFieldLength("theme", c.Theme, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}

	if err := validateChoice("input.syntax", c.Input.Syntax, validSyntaxes); err != nil {
		return err
	}
	if err := validateChoice("output.format", c.Output.Format, validFormats); err != nil {
		return err
	}

	if c.Output.Workers < 0 || c.Output.Workers > MaxWorkers {
		return fmt.Errorf("%w: output.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Output.Workers)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.maxBodyBytes: must not be negative, got %d", ErrInvalidValue, c.Server.MaxBodyBytes)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateChoice accepts an empty value or one of choices, case-insensitively.
func validateChoice(fieldName, value string, choices []string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxFormatLength); err != nil {
		return err
	}
	for _, c := range choices {
		if strings.EqualFold(value, c) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(choices, ", "))
}

// DefaultConfig returns a neutral configuration: embedded assets, default
// theme, syntax from file extensions, docx output next to the source.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: "docx"},
		Server: ServerConfig{Addr: ":8080", MaxBodyBytes: DefaultMaxBodyBytes},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in order: current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2office", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
