package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2office/internal/config"
	"github.com/alnah/go-md2office/internal/fileutil"
	"github.com/alnah/go-md2office/internal/hints"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2OFFICE_CONFIG: config file name or path
	Theme      string // MD2OFFICE_THEME: theme name or path
	AssetPath  string // MD2OFFICE_ASSET_PATH: custom asset directory

	Format    string // MD2OFFICE_FORMAT: docx, pptx, pdf, txt, html
	Syntax    string // MD2OFFICE_SYNTAX: plain, markdown, html
	InputDir  string // MD2OFFICE_INPUT_DIR: default input directory
	OutputDir string // MD2OFFICE_OUTPUT_DIR: default output directory
	Workers   int    // MD2OFFICE_WORKERS: parallel workers

	Addr string // MD2OFFICE_ADDR: serve listen address
}

// knownEnvVars lists valid MD2OFFICE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2OFFICE_CONFIG":     true,
	"MD2OFFICE_THEME":      true,
	"MD2OFFICE_ASSET_PATH": true,
	"MD2OFFICE_FORMAT":     true,
	"MD2OFFICE_SYNTAX":     true,
	"MD2OFFICE_INPUT_DIR":  true,
	"MD2OFFICE_OUTPUT_DIR": true,
	"MD2OFFICE_WORKERS":    true,
	"MD2OFFICE_ADDR":       true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2OFFICE_CONFIG"),
		Theme:      os.Getenv("MD2OFFICE_THEME"),
		AssetPath:  os.Getenv("MD2OFFICE_ASSET_PATH"),
		Format:     os.Getenv("MD2OFFICE_FORMAT"),
		Syntax:     os.Getenv("MD2OFFICE_SYNTAX"),
		InputDir:   os.Getenv("MD2OFFICE_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2OFFICE_OUTPUT_DIR"),
		Addr:       os.Getenv("MD2OFFICE_ADDR"),
	}

	if workers := os.Getenv("MD2OFFICE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2OFFICE_* variables.
// Helps catch typos like MD2OFFICE_FROMAT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2OFFICE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A value is set only when the config still holds its default, so the
// order is: CLI flags > config file > env vars > defaults.
// (CLI flags are applied later by each command.)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	def := config.DefaultConfig()

	if env.Theme != "" && cfg.Theme == def.Theme {
		cfg.Theme = env.Theme
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == def.Assets.BasePath {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Format != "" && cfg.Output.Format == def.Output.Format {
		cfg.Output.Format = env.Format
	}
	if env.Syntax != "" && cfg.Input.Syntax == def.Input.Syntax {
		cfg.Input.Syntax = env.Syntax
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == def.Input.DefaultDir {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == def.Output.DefaultDir {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Output.Workers == def.Output.Workers {
		cfg.Output.Workers = env.Workers
	}
	if env.Addr != "" && cfg.Server.Addr == def.Server.Addr {
		cfg.Server.Addr = env.Addr
	}
}

// loadConfig resolves the effective configuration for a command: the named
// config file (flag, then MD2OFFICE_CONFIG) or env.Config, with environment
// overrides applied and the result validated.
func loadConfig(flagConfig string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			var hint string
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
		if env.Config != nil {
			c := *env.Config
			cfg = &c
		}
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
