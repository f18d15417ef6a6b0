// Package mdtopdf converts Markdown documents to PDF using an installed
// Chromium-family browser in headless print-to-PDF mode.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := mdtopdf.New()
//
//	result, err := svc.Convert(ctx, mdtopdf.Input{
//	    Markdown:    "# Hello\n\nWorld",
//	    Colorscheme: mdtopdf.DefaultColorscheme,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the assembled
// HTML document (result.HTML) for debugging. Use Input.HTMLOnly to skip
// PDF generation entirely, which requires no browser.
//
// # Conversion Pipeline
//
// The conversion process follows three stages:
//
//  1. Markdown to HTML fragment via Goldmark (GFM, footnotes, syntax
//     highlighting of fenced code blocks through Chroma)
//  2. Document assembly: the fragment is wrapped in a complete HTML
//     document carrying the vendored GitHub-flavored stylesheet and the
//     stylesheet of the selected colorscheme, both inline (no network)
//  3. PDF export: the document is written to a temporary location and an
//     installed Chromium-family browser is invoked once with
//     --headless --print-to-pdf
//
// # Colorschemes
//
// Syntax highlighting styles come from Chroma's registry. Colorschemes
// lists the valid names; ValidateColorscheme rejects anything else before
// any file I/O happens.
//
// # Browser Requirements
//
// PDF export requires a Chromium-family browser on PATH (chromium,
// chromium-browser, chrome, google-chrome, google-chrome-stable, brave,
// brave-browser). Set MDTOPDF_BROWSER or use WithBrowser to point at a
// specific binary. The browser is never downloaded; offline environments
// work as long as one is installed.
package mdtopdf
