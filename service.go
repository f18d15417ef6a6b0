package mdtopdf

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-PDF pipeline:
// render (goldmark) -> assemble (document shell + stylesheets) ->
// export (headless browser subprocess). Stages run strictly in order;
// each invocation assembles exactly one document and spawns at most one
// browser subprocess.
type Service struct {
	cfg      serviceConfig
	exporter pdfExporter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithBrowser).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the exporter if not injected (e.g., by tests)
	if s.exporter == nil {
		s.exporter = newChromiumExporter(s.cfg.browser, s.cfg.timeout)
	}

	return s
}

// Convert runs the full pipeline and returns the assembled HTML and, unless
// input.HTMLOnly is set, the PDF bytes. Validation happens before any file
// I/O: an unknown colorscheme fails without creating temporary files.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	colorscheme := input.Colorscheme
	if colorscheme == "" {
		colorscheme = DefaultColorscheme
	}

	if err := s.validateInput(input, colorscheme); err != nil {
		return nil, err
	}

	converter := newGoldmarkConverter(colorscheme)
	fragment, err := converter.ToHTML(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	document, err := assembleDocument(fragment, colorscheme, input.PlainCSS)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	if input.HTMLOnly {
		return &Result{HTML: document}, nil
	}

	pdf, err := s.exporter.ExportPDF(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("exporting PDF: %w", err)
	}

	return &Result{HTML: document, PDF: pdf}, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input, colorscheme string) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return ValidateColorscheme(colorscheme)
}
