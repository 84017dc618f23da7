package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2office/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	undo := setMaxProcs(hasVerboseFlag(os.Args[1:]))
	code := runMain(os.Args, DefaultEnv())
	undo()
	os.Exit(code)
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// On error the runtime default stays in effect.
func setMaxProcs(verbose bool) func() {
	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logger))
	return undo
}

// hasVerboseFlag scans raw arguments for -v or --verbose before any
// command has parsed them.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(ctx, rest, env)
	case "serve":
		err = runServeCmd(ctx, rest, env)
	case "theme":
		err = runThemeCmd(ctx, rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2office %s\n", Version)
	case "help", "-h", "--help":
		runHelp(rest, env)
	default:
		if !looksLikeConvertArg(cmd) {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		// Bare "md2office notes.md" is shorthand for convert.
		err = runConvertCmd(ctx, args[1:], env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// looksLikeConvertArg reports whether a first argument that is not a
// command name should be handed to convert: a flag, a supported input
// file or an existing path.
func looksLikeConvertArg(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return true
	}
	if _, ok := inputSyntaxes[strings.ToLower(filepath.Ext(arg))]; ok {
		return true
	}
	return fileutil.FileExists(arg)
}
