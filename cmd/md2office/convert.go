package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/config"
	"github.com/alnah/go-md2office/internal/fileutil"
	"github.com/alnah/go-md2office/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoFiles            = errors.New("no convertible files found")
	ErrReadInput          = errors.New("failed to read input file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("unsupported input extension")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrSameFile           = errors.New("output would overwrite input")
	ErrConversionFailed   = errors.New("conversions failed")
)

// inputSyntaxes maps input file extensions to the syntax they imply.
var inputSyntaxes = map[string]md2office.Syntax{
	".md":       md2office.SyntaxMarkdown,
	".markdown": md2office.SyntaxMarkdown,
	".txt":      md2office.SyntaxPlain,
	".text":     md2office.SyntaxPlain,
	".html":     md2office.SyntaxHTML,
	".htm":      md2office.SyntaxHTML,
}

// Exporter is the interface for the conversion service.
type Exporter interface {
	Export(in md2office.Input) (*md2office.Result, error)
}

// Compile-time interface implementation check.
var _ Exporter = (*md2office.Converter)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputBase string // Output path without extension
	OutputPath string // Explicit output file (-o with an extension); wins over OutputBase
	Syntax     md2office.Syntax
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	format md2office.Format
	syntax md2office.Syntax // empty = from extension
	title  string           // empty = from file name
	slides bool
	now    func() time.Time
}

// runConvertCmd parses flags and runs the convert command.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	params, err := buildParams(flags, cfg, env)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir, params.format)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, inputPath)
	}

	exporter, err := newConverter(cfg, env)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) to %s with %d worker(s)\n",
			len(files), params.format, min(md2office.ResolvePoolSize(cfg.Output.Workers), len(files)))
	}

	results := convertBatch(ctx, exporter, files, params, cfg.Output.Workers)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed == 0 {
		return nil
	}
	if len(results) == 1 {
		return results[0].Err
	}
	return fmt.Errorf("%w: %d of %d", ErrConversionFailed, failed, len(results))
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.syntax != "" {
		cfg.Input.Syntax = flags.syntax
	}
	if flags.workers != 0 {
		cfg.Output.Workers = flags.workers
	}
	if flags.assets.theme != "" {
		cfg.Theme = flags.assets.theme
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// buildParams validates format and syntax once for the whole batch.
func buildParams(flags *convertFlags, cfg *config.Config, env *Environment) (*conversionParams, error) {
	format, err := parseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	var syntax md2office.Syntax
	if cfg.Input.Syntax != "" {
		syntax, err = md2office.ParseSyntax(cfg.Input.Syntax)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForSyntax(syntaxNames()))
		}
	}

	return &conversionParams{
		format: format,
		syntax: syntax,
		title:  flags.title,
		slides: flags.slides,
		now:    env.Now,
	}, nil
}

// parseFormat accepts one of md2office.Formats, case-insensitively.
// Empty means docx.
func parseFormat(s string) (md2office.Format, error) {
	if strings.TrimSpace(s) == "" {
		return md2office.FormatDocx, nil
	}
	f := md2office.Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(md2office.Formats(), f) {
		return f, nil
	}
	names := make([]string, 0, len(md2office.Formats()))
	for _, f := range md2office.Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidFormat, s, strings.Join(names, ", "))
}

func syntaxNames() []string {
	names := make([]string, 0, len(md2office.Syntaxes()))
	for _, s := range md2office.Syntaxes() {
		names = append(names, string(s))
	}
	return names
}

// newConverter builds the exporter from config, with hints on theme errors.
func newConverter(cfg *config.Config, env *Environment) (*md2office.Converter, error) {
	var opts []md2office.Option
	switch {
	case cfg.Assets.BasePath != "":
		opts = append(opts, md2office.WithAssetPath(cfg.Assets.BasePath))
	case env.AssetLoader != nil:
		opts = append(opts, md2office.WithAssetLoader(env.AssetLoader))
	}
	if cfg.Theme != "" {
		opts = append(opts, md2office.WithThemeName(cfg.Theme))
	}

	conv, err := md2office.NewConverter(opts...)
	switch {
	case err == nil:
		return conv, nil
	case errors.Is(err, md2office.ErrThemeNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForThemeNotFound(md2office.ThemeNames()))
	case errors.Is(err, md2office.ErrInvalidTheme):
		return nil, fmt.Errorf("%w%s", err, hints.ForInvalidTheme())
	default:
		return nil, err
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// discoverFiles finds all convertible files under inputPath.
func discoverFiles(inputPath, outputDir string, format md2office.Format) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		syntax, err := syntaxForExtension(inputPath)
		if err != nil {
			return nil, err
		}
		f := FileToConvert{
			InputPath:  inputPath,
			OutputBase: resolveOutputBase(inputPath, outputDir, ""),
			Syntax:     syntax,
		}
		if isOutputFile(outputDir, format) {
			f.OutputPath = outputDir
		}
		return []FileToConvert{f}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		syntax, ok := inputSyntaxes[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputBase: resolveOutputBase(path, outputDir, inputPath),
			Syntax:     syntax,
		})
		return nil
	})

	return files, err
}

// isOutputFile reports whether -o names a file of the target format
// rather than a directory.
func isOutputFile(outputDir string, format md2office.Format) bool {
	return outputDir != "" && strings.EqualFold(filepath.Ext(outputDir), "."+string(format))
}

// resolveOutputBase determines the output path, without extension, for an
// input file. Relative directories under baseInputDir are preserved.
func resolveOutputBase(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base)
		}
	}

	return filepath.Join(outputDir, base)
}

// syntaxForExtension returns the syntax implied by a supported extension.
func syntaxForExtension(path string) (md2office.Syntax, error) {
	ext := filepath.Ext(path)
	syntax, ok := inputSyntaxes[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: got %q (want .md, .markdown, .txt, .text, .html or .htm)", ErrInvalidExtension, ext)
	}
	return syntax, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2office.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2office.MaxPoolSize)
	}
	return nil
}

// convertBatch processes files concurrently. The exporter is shared; it
// must be safe for concurrent use.
func convertBatch(ctx context.Context, exporter Exporter, files []FileToConvert, params *conversionParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(md2office.ResolvePoolSize(workers), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(exporter, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(exporter Exporter, f FileToConvert, params *conversionParams) ConversionResult {
	start := params.now()
	result := ConversionResult{InputPath: f.InputPath}
	done := func(err error) ConversionResult {
		result.Err = err
		result.Duration = params.now().Sub(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	syntax := params.syntax
	if syntax == "" {
		syntax = f.Syntax
	}
	title := params.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(f.InputPath), filepath.Ext(f.InputPath))
	}

	res, err := exporter.Export(md2office.Input{
		Content:  string(content),
		Format:   params.format,
		Filename: title,
		Syntax:   syntax,
		Slides:   params.slides,
	})
	if err != nil {
		return done(fmt.Errorf("%s: %w", f.InputPath, err))
	}

	result.OutputPath, err = outputPath(f, res.Extension())
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	if sameFile(f.InputPath, result.OutputPath) {
		return done(fmt.Errorf("%w: %s", ErrSameFile, f.InputPath))
	}

	if err := fileutil.WriteFile(result.OutputPath, res.Data); err != nil {
		return done(fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory()))
	}

	return done(nil)
}

// outputPath returns where f is written once the export extension is known.
// An explicit OutputPath wins; otherwise the input's extension on OutputBase
// is swapped for ext, so dots inside the base name survive.
func outputPath(f FileToConvert, ext string) (string, error) {
	if f.OutputPath != "" {
		return f.OutputPath, nil
	}
	return fileutil.ReplaceExt(f.OutputBase+filepath.Ext(f.InputPath), ext)
}

// sameFile reports whether a and b name the same file.
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, errA := os.Stat(a)
	bi, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(ai, bi)
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results and returns the number
// of failures. A lone failure is left for the caller to report.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
