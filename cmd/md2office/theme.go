package main

import (
	"context"
	"fmt"
	"strings"

	md2office "github.com/alnah/go-md2office"
)

// runThemeCmd prints the resolved theme as YAML, or the built-in theme
// names with --list. The YAML output is a complete theme file to start from.
func runThemeCmd(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parseThemeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	if flags.list {
		for _, name := range md2office.ThemeNames() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	if flags.assets.theme != "" {
		cfg.Theme = flags.assets.theme
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	conv, err := newConverter(cfg, env)
	if err != nil {
		return err
	}
	data, err := conv.Theme().Encode()
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
