package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader md2office.AssetLoader // nil = built from --asset-path or config
	Config      *config.Config        // used when no config file is named
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}

// logger returns a structured logger writing to env.Stderr.
// JSON output suits log collectors; text is for terminals.
func (env *Environment) logger(jsonFormat bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(env.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(env.Stderr, opts))
}

// logLevel maps --quiet and --verbose to a slog level.
func (f commonFlags) logLevel() slog.Level {
	switch {
	case f.quiet:
		return slog.LevelWarn
	case f.verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
