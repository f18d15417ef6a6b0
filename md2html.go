package mdtopdf

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// crlfOrCR normalizes Windows and old-Mac line endings before conversion.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// htmlConverter abstracts Markdown to HTML fragment conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML fragment using goldmark.
// The extension set is fixed: GFM (tables, strikethrough, autolinks, task
// lists), footnotes, and fenced-code syntax highlighting with class-based
// output. Preserve this set as-is; the assembled document's stylesheets
// target exactly what it produces.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a converter highlighting code blocks with
// the given colorscheme. The colorscheme must already be validated.
func newGoldmarkConverter(colorscheme string) *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(colorscheme),
				highlighting.WithFormatOptions(
					// Classed output: the stylesheet is injected once per
					// document instead of inline styles on every token.
					chromahtml.WithClasses(true),
				),
			),
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Code blocks with a recognized language hint render as highlighted token
// spans; unrecognized or absent hints pass through as plain preformatted
// text. Output is deterministic for a fixed input and colorscheme.
//
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
