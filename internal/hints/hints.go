// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/mdtopdf/mdtopdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserNotFound returns hints for missing browser errors.
func ForBrowserNotFound() string {
	hints := []string{"install chromium or another chromium-family browser"}
	if os.Getenv("MDTOPDF_BROWSER") == "" {
		hints = append(hints, "or set MDTOPDF_BROWSER to an installed binary")
	}
	return formatHints(hints)
}

// ForBrowserFailure returns hints for browser subprocess failures.
// Detects sandbox-hostile environments (containers, CI).
func ForBrowserFailure() string {
	var hints []string
	if IsInContainer() || os.Getenv("CI") != "" {
		hints = append(hints, "the browser sandbox often fails in containers")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
