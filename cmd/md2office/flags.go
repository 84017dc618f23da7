package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing errors other than a help request.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds theme and asset directory flags.
type assetFlags struct {
	theme     string // Name or path of a theme YAML
	assetPath string // Override asset directory
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	assets  assetFlags
	output  string
	workers int
	format  string
	syntax  string
	title   string
	slides  bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common  commonFlags
	assets  assetFlags
	addr    string
	maxBody int64
	logJSON bool
}

// themeFlags holds flags for the theme command.
type themeFlags struct {
	common commonFlags
	assets assetFlags
	list   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.theme, "theme", "", "theme name or YAML file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newConvertFlagSet registers the convert flags into f.
// Shared by parsing and completion so both see the same flags.
func newConvertFlagSet(f *convertFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: docx, pptx, pdf, txt, html")
	fs.StringVar(&f.syntax, "syntax", "", "input syntax: plain, markdown, html (default: from extension)")
	fs.StringVarP(&f.title, "title", "t", "", "document title (default: input file name)")
	fs.BoolVar(&f.slides, "slides", false, "with --format html, preview as slides")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printConvertUsage(usage) }
	return fs
}

// newServeFlagSet registers the serve flags into f.
func newServeFlagSet(f *serveFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default :8080)")
	fs.Int64Var(&f.maxBody, "max-body", 0, "maximum request body in bytes (0 = config default)")
	fs.BoolVar(&f.logJSON, "log-json", false, "write request logs as JSON")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printServeUsage(usage) }
	return fs
}

// newThemeFlagSet registers the theme flags into f.
func newThemeFlagSet(f *themeFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.BoolVarP(&f.list, "list", "l", false, "list built-in theme names")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printThemeUsage(usage) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f, usage)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string, usage io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newServeFlagSet(f, usage)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseThemeFlags parses theme command flags.
func parseThemeFlags(args []string, usage io.Writer) (*themeFlags, []string, error) {
	f := &themeFlags{}
	fs := newThemeFlagSet(f, usage)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFlagSet parses args, passing flag.ErrHelp through unwrapped.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
}
