package mdtopdf

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultColorscheme is used when no colorscheme is selected.
const DefaultColorscheme = "github-dark"

// Colorschemes returns the names of all registered syntax-highlighting
// colorschemes, sorted and duplicate-free. Every returned name is accepted
// by ValidateColorscheme.
func Colorschemes() []string {
	return styles.Names()
}

// ValidateColorscheme checks that name refers to a registered colorscheme.
// Chroma's styles.Get silently falls back for unknown names, so the
// registry is consulted directly here. The error lists the valid names.
func ValidateColorscheme(name string) error {
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownColorscheme, name, strings.Join(Colorschemes(), ", "))
	}
	return nil
}

// colorschemeCSS returns the stylesheet text for a colorscheme, generated
// by Chroma's classed HTML formatter. The renderer emits class-based
// highlight markup, so this stylesheet must accompany it in the document.
func colorschemeCSS(name string) (string, error) {
	if err := ValidateColorscheme(name); err != nil {
		return "", err
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, styles.Get(name)); err != nil {
		return "", fmt.Errorf("writing colorscheme stylesheet: %w", err)
	}
	return buf.String(), nil
}
