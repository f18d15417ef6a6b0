package mdtopdf

import "time"

// Input contains conversion parameters for a single invocation.
type Input struct {
	Markdown    string // Markdown content (required)
	Colorscheme string // syntax-highlighting colorscheme (empty = DefaultColorscheme)
	PlainCSS    bool   // skip the vendored Markdown stylesheet
	HTMLOnly    bool   // stop after document assembly, no browser
}

// Result holds the produced artifacts.
// HTML is always set; PDF is nil when Input.HTMLOnly was requested.
type Result struct {
	HTML string
	PDF  []byte
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	browser string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdtopdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBrowser sets an explicit browser binary name or path, bypassing
// PATH candidate discovery.
func WithBrowser(bin string) Option {
	return func(s *Service) {
		s.cfg.browser = bin
	}
}

// withExporter injects a pdfExporter, used by tests to avoid spawning a
// browser.
func withExporter(e pdfExporter) Option {
	return func(s *Service) {
		s.exporter = e
	}
}
