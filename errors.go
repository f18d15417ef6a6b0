package mdtopdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown      = errors.New("markdown content cannot be empty")
	ErrUnknownColorscheme = errors.New("unknown colorscheme")
	ErrHTMLConversion     = errors.New("HTML conversion failed")
	ErrBrowserNotFound    = errors.New("no chromium-family browser found")
	ErrPDFGeneration      = errors.New("PDF generation failed")
)
