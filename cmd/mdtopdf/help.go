package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: mdtopdf [-h] [-v] [-o OUTPUT_FILE] [-c COLORSCHEME] [--list-colorschemes] [INPUT_FILE]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to PDF using an installed chromium-family browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  INPUT_FILE                Markdown file (omitted = read standard input,")
	fmt.Fprintln(w, "                            which requires -o)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help                Print this help message and exit")
	fmt.Fprintln(w, "  -v, --version             Print the version number and exit")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: INPUT_FILE with .pdf extension)")
	fmt.Fprintln(w, "  -c, --colorscheme <name>  Syntax-highlighting colorscheme (default: github-dark)")
	fmt.Fprintln(w, "      --list-colorschemes   List valid colorschemes, one per line, and exit")
	fmt.Fprintln(w, "      --no-css              Use the browser's default appearance")
	fmt.Fprintln(w, "      --html-only           Write the assembled HTML instead of a PDF")
	fmt.Fprintln(w, "      --config <name|path>  Config file (searched in . and ~/.config/mdtopdf/)")
	fmt.Fprintln(w, "      --browser <bin>       Browser binary name or path (also: $MDTOPDF_BROWSER)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF export timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --verbose             Show timing on stderr")
	fmt.Fprintln(w, "      --completion <shell>  Print a completion script (bash, zsh, fish)")
	fmt.Fprintln(w, "      --doctor              Check the environment (browser, temp dir) and exit")
	fmt.Fprintln(w, "      --json                With --doctor, print the report as JSON")
}
