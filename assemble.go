package mdtopdf

import (
	"fmt"
	"strings"

	"github.com/mdtopdf/mdtopdf/internal/assets"
)

// markdownStyleName is the vendored stylesheet giving the GitHub-flavored
// look. It targets the .markdown-body container class.
const markdownStyleName = "github-markdown"

// documentShell is the fixed HTML5 shell around the rendered fragment.
// Placeholders: head styles, body content.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
%s</head>
<body class="markdown-body">
%s
</body>
</html>
`

// assembleDocument wraps an HTML fragment in a complete document.
// The head carries the vendored Markdown stylesheet (unless plain is set)
// and the stylesheet of the selected colorscheme, both as inline <style>
// blocks so the document renders without network access.
func assembleDocument(fragment, colorscheme string, plain bool) (string, error) {
	var head strings.Builder

	if !plain {
		markdownCSS, err := assets.LoadStyle(markdownStyleName)
		if err != nil {
			return "", fmt.Errorf("loading vendored stylesheet: %w", err)
		}
		writeStyleBlock(&head, markdownCSS)
	}

	highlightCSS, err := colorschemeCSS(colorscheme)
	if err != nil {
		return "", err
	}
	writeStyleBlock(&head, highlightCSS)

	return fmt.Sprintf(documentShell, head.String(), fragment), nil
}

// writeStyleBlock appends a sanitized <style> block.
func writeStyleBlock(b *strings.Builder, css string) {
	if css == "" {
		return
	}
	b.WriteString("<style>\n")
	b.WriteString(sanitizeCSS(css))
	b.WriteString("\n</style>\n")
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
