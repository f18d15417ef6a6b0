package mdtopdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdtopdf/mdtopdf/internal/fileutil"
	"github.com/mdtopdf/mdtopdf/internal/hints"
)

// pdfExporter abstracts HTML to PDF export to allow different backends.
type pdfExporter interface {
	ExportPDF(ctx context.Context, htmlContent string) ([]byte, error)
}

// Compile-time interface check.
var _ pdfExporter = (*chromiumExporter)(nil)

// BrowserEnvVar names a browser binary to use instead of PATH discovery.
const BrowserEnvVar = "MDTOPDF_BROWSER"

// browserCandidates are tried in order when no explicit binary is given.
var browserCandidates = []string{
	"chromium",
	"chromium-browser",
	"chrome",
	"google-chrome",
	"google-chrome-stable",
	"brave",
	"brave-browser",
}

// stderrTailLimit caps how much captured browser output ends up in errors.
const stderrTailLimit = 2048

// FindBrowser resolves the browser binary that ExportPDF would invoke.
// An explicit name or path (flag, config, or MDTOPDF_BROWSER) wins; it must
// resolve or the error says so rather than silently falling back. Otherwise
// the candidate list is walked on PATH. No conversion work happens before
// this resolves.
func FindBrowser(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(BrowserEnvVar)
	}

	if explicit != "" {
		path, err := exec.LookPath(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not an executable: %v", ErrBrowserNotFound, explicit, err)
		}
		return path, nil
	}

	for _, candidate := range browserCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s%s",
		ErrBrowserNotFound, strings.Join(browserCandidates, ", "), hints.ForBrowserNotFound())
}

// chromiumExporter renders HTML to PDF by invoking an installed
// Chromium-family browser once in headless print-to-PDF mode.
type chromiumExporter struct {
	browser string // explicit binary; empty means discover on PATH
	timeout time.Duration
}

// newChromiumExporter creates an exporter with the given browser override
// and per-export timeout.
func newChromiumExporter(browser string, timeout time.Duration) *chromiumExporter {
	return &chromiumExporter{browser: browser, timeout: timeout}
}

// ExportPDF writes htmlContent to a private temporary directory, runs the
// browser against it, and returns the produced PDF bytes. The temporary
// directory is removed on every exit path. Exactly one subprocess is
// spawned; failures are terminal, never retried.
func (e *chromiumExporter) ExportPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	bin, err := FindBrowser(e.browser)
	if err != nil {
		return nil, err
	}

	dir, cleanup, err := fileutil.TempDir("mdtopdf-")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	htmlPath := filepath.Join(dir, "document.html")
	if err := os.WriteFile(htmlPath, []byte(htmlContent), 0o600); err != nil {
		return nil, fmt.Errorf("writing temporary document: %w", err)
	}

	pdfPath := filepath.Join(dir, "output.pdf")

	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, bin, printToPDFArgs(pdfPath, htmlPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	configureProcessGroup(cmd)

	if err := cmd.Run(); err != nil {
		if ctxErr := runCtx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: browser interrupted: %v", ErrPDFGeneration, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s exited: %v%s%s",
			ErrPDFGeneration, bin, err, stderrTail(&stderr), hints.ForBrowserFailure())
	}

	pdf, err := os.ReadFile(pdfPath) // #nosec G304 -- path is inside our own temp dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s exited cleanly but produced no PDF%s",
				ErrPDFGeneration, bin, stderrTail(&stderr))
		}
		return nil, fmt.Errorf("%w: reading PDF artifact: %v", ErrPDFGeneration, err)
	}

	return pdf, nil
}

// printToPDFArgs builds the headless print-to-PDF invocation.
// --no-pdf-header-footer suppresses the default date/URL header and footer.
// The sandbox is disabled only where it cannot work (containers, CI).
func printToPDFArgs(pdfPath, htmlPath string) []string {
	args := []string{
		"--headless",
		"--disable-gpu",
		"--no-pdf-header-footer",
		"--print-to-pdf=" + pdfPath,
	}
	if hints.IsInContainer() || os.Getenv("CI") != "" {
		args = append(args, "--no-sandbox")
	}
	return append(args, "file://"+htmlPath)
}

// stderrTail formats captured browser diagnostics for error messages,
// truncated to the last stderrTailLimit bytes.
func stderrTail(buf *bytes.Buffer) string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return ""
	}
	if len(out) > stderrTailLimit {
		out = out[len(out)-stderrTailLimit:]
	}
	return "\n" + out
}
