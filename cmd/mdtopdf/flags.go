package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	output      string
	colorscheme string
	listSchemes bool
	version     bool
	help        bool
	noCSS       bool
	htmlOnly    bool
	config      string
	browser     string
	timeout     string
	verbose     bool
	completion  string
	doctor      bool
	jsonOutput  bool
}

// newFlagSet registers all flags on a fresh FlagSet.
// The colorscheme default stays empty here so config-file values can be
// told apart from an explicit flag; the effective default is applied in
// runConvert.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mdtopdf", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVarP(&f.colorscheme, "colorscheme", "c", "", "syntax-highlighting colorscheme (default: github-dark)")
	fs.BoolVar(&f.listSchemes, "list-colorschemes", false, "list valid colorschemes and exit")
	fs.BoolVarP(&f.version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print this help message and exit")
	fs.BoolVar(&f.noCSS, "no-css", false, "use the browser's default appearance")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the assembled HTML instead of a PDF")
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.StringVar(&f.browser, "browser", "", "browser binary name or path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF export timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.verbose, "verbose", false, "show timing on stderr")
	fs.StringVar(&f.completion, "completion", "", "print a completion script for a shell (bash, zsh, fish)")
	fs.BoolVar(&f.doctor, "doctor", false, "check the environment (browser, temp dir) and exit")
	fs.BoolVar(&f.jsonOutput, "json", false, "with --doctor, print the report as JSON")

	return fs
}

// parseFlags parses arguments (without the program name) and returns the
// flags plus positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	fs.SetOutput(io.Discard) // usage printing is handled by the caller
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	return f, fs.Args(), nil
}
