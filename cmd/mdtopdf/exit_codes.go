package main

import (
	"errors"
	"os"

	mdtopdf "github.com/mdtopdf/mdtopdf"
	"github.com/mdtopdf/mdtopdf/internal/config"
)

// Exit codes for the mdtopdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion (including help/version/list paths)
	ExitGeneral = 1 // General/unexpected error, markdown conversion failure
	ExitUsage   = 2 // Invalid flags, unknown colorscheme, bad config
	ExitIO      = 3 // Input unreadable, output unwritable
	ExitBrowser = 4 // Browser missing or print-to-PDF failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser/export errors (exit 4)
	if errors.Is(err, mdtopdf.ErrBrowserNotFound) ||
		errors.Is(err, mdtopdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, mdtopdf.ErrUnknownColorscheme) ||
		errors.Is(err, mdtopdf.ErrEmptyMarkdown) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
