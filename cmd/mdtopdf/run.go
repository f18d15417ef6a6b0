package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdtopdf "github.com/mdtopdf/mdtopdf"
	"github.com/mdtopdf/mdtopdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	errUsage        = errors.New("invalid usage")
	ErrTooManyArgs  = errors.New("too many arguments")
	ErrNoOutput     = errors.New("output path required when reading from stdin")
	ErrReadMarkdown = errors.New("failed to read markdown input")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// filePermissions for produced artifacts: owner read+write, others read.
const filePermissions = 0o644

// run dispatches on the selected mode. Help, version, completion,
// colorscheme listing, and doctor take precedence over conversion and over
// each other in that order; extra flags alongside them are ignored, never
// errors.
func run(ctx context.Context, argv []string, env *Environment) error {
	flags, positional, err := parseFlags(argv[1:])
	if err != nil {
		printUsage(env.Stderr)
		return err
	}

	switch {
	case flags.help:
		printUsage(env.Stdout)
		return nil
	case flags.version:
		fmt.Fprintln(env.Stdout, Version)
		return nil
	case flags.completion != "":
		return writeCompletion(env.Stdout, Shell(flags.completion))
	case flags.listSchemes:
		for _, name := range mdtopdf.Colorschemes() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	case flags.doctor:
		return runDoctor(env.Stdout, flags.browser, flags.jsonOutput)
	}

	return runConvert(ctx, positional, flags, env)
}

// runConvert performs a single conversion: resolve options, read input,
// run the pipeline, write the artifact.
func runConvert(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", ErrTooManyArgs, len(positional))
	}

	// Load configuration; flags win over config values.
	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	colorscheme := firstNonEmpty(flags.colorscheme, cfg.Colorscheme, mdtopdf.DefaultColorscheme)
	browser := firstNonEmpty(flags.browser, cfg.Browser)

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}

	// Validate the colorscheme before touching any file.
	if err := mdtopdf.ValidateColorscheme(colorscheme); err != nil {
		return err
	}

	var inputPath string
	if len(positional) == 1 {
		inputPath = positional[0]
	}

	// Resolve the output path before reading anything: stdin input without
	// -o must fail fast, not block on a terminal that never closes.
	outputPath, err := resolveOutputPath(flags.output, inputPath, flags.htmlOnly)
	if err != nil {
		return err
	}

	markdown, err := readInput(inputPath, env.Stdin)
	if err != nil {
		return err
	}

	opts := []mdtopdf.Option{}
	if timeout > 0 {
		opts = append(opts, mdtopdf.WithTimeout(timeout))
	}
	if browser != "" {
		opts = append(opts, mdtopdf.WithBrowser(browser))
	}
	svc := mdtopdf.New(opts...)

	start := time.Now()
	result, err := svc.Convert(ctx, mdtopdf.Input{
		Markdown:    markdown,
		Colorscheme: colorscheme,
		PlainCSS:    flags.noCSS,
		HTMLOnly:    flags.htmlOnly,
	})
	if err != nil {
		return err
	}

	artifact := result.PDF
	if flags.htmlOnly {
		artifact = []byte(result.HTML)
	}

	// #nosec G306 -- output files are intended to be readable
	if err := os.WriteFile(outputPath, artifact, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "converted in %s\n", time.Since(start).Round(time.Millisecond))
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	return nil
}

// readInput returns the markdown content; an empty inputPath reads stdin.
func readInput(inputPath string, stdin io.Reader) (string, error) {
	if inputPath == "" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return string(content), nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrReadMarkdown, inputPath)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// resolveOutputPath returns the explicit output path, or derives one from
// the input name by replacing its extension. Reading from stdin requires
// an explicit output path.
func resolveOutputPath(output, inputPath string, htmlOnly bool) (string, error) {
	if output != "" {
		return output, nil
	}
	if inputPath == "" {
		return "", ErrNoOutput
	}

	ext := ".pdf"
	if htmlOnly {
		ext = ".html"
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext, nil
}

// resolveTimeout parses the flag value, falling back to the config file.
func resolveTimeout(flagValue string, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: invalid timeout %q", errUsage, flagValue)
		}
		return d, nil
	}
	return cfg.TimeoutDuration()
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
