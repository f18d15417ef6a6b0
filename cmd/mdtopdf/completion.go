package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long  string // --output
	Short string // -o (empty if none)
	Bool  bool   // takes no argument
	Desc  string
}

// completionFlags extracts flag definitions from the real FlagSet, so the
// completion scripts never drift from the parser.
func completionFlags() []flagDef {
	var f cliFlags
	fs := newFlagSet(&f)

	var defs []flagDef
	fs.VisitAll(func(fl *flag.Flag) {
		defs = append(defs, flagDef{
			Long:  fl.Name,
			Short: fl.Shorthand,
			Bool:  fl.Value.Type() == "bool",
			Desc:  fl.Usage,
		})
	})
	return defs
}

// writeCompletion writes a completion script for the given shell to w.
func writeCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes a bash completion script.
// Colorscheme values are completed by asking the binary itself.
func generateBash(w io.Writer) error {
	var longs []string
	for _, d := range completionFlags() {
		longs = append(longs, "--"+d.Long)
	}

	_, err := fmt.Fprintf(w, `# bash completion for mdtopdf
_mdtopdf() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "$prev" in
        -c|--colorscheme)
            COMPREPLY=( $(compgen -W "$(mdtopdf --list-colorschemes 2>/dev/null)" -- "$cur") )
            return
            ;;
        --completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "$cur") )
            return
            ;;
        -o|--output|--config|--browser)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -X '!*.@(md|markdown)' -- "$cur") $(compgen -d -- "$cur") )
}
complete -F _mdtopdf mdtopdf
`, strings.Join(longs, " "))
	return err
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer) error {
	var b strings.Builder
	b.WriteString("#compdef mdtopdf\n\n_mdtopdf() {\n    _arguments \\\n")

	for _, d := range completionFlags() {
		spec := "--" + d.Long
		if d.Short != "" {
			spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}", d.Short, d.Long, d.Short, d.Long)
		} else {
			spec = "'" + spec + "'"
		}

		desc := "[" + zshEscape(d.Desc) + "]"
		action := ""
		if !d.Bool {
			switch d.Long {
			case "colorscheme":
				action = ":colorscheme:($(mdtopdf --list-colorschemes 2>/dev/null))"
			case "completion":
				action = ":shell:(bash zsh fish)"
			default:
				action = ":file:_files"
			}
		}
		fmt.Fprintf(&b, "        %s%s%s \\\n", spec, desc, action)
	}

	b.WriteString("        '1:markdown file:_files -g \"*.(md|markdown)\"'\n}\n\n_mdtopdf \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# fish completion for mdtopdf\n")
	b.WriteString("complete -c mdtopdf -k -a \"(__fish_complete_suffix .md .markdown)\"\n")

	for _, d := range completionFlags() {
		fmt.Fprintf(&b, "complete -c mdtopdf -l %s", d.Long)
		if d.Short != "" {
			fmt.Fprintf(&b, " -s %s", d.Short)
		}
		if !d.Bool {
			b.WriteString(" -r")
		}
		switch d.Long {
		case "colorscheme":
			b.WriteString(" -f -a \"(mdtopdf --list-colorschemes 2>/dev/null)\"")
		case "completion":
			b.WriteString(" -f -a \"bash zsh fish\"")
		}
		fmt.Fprintf(&b, " -d %q\n", d.Desc)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// zshEscape escapes characters that break _arguments descriptions.
func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", "'\\''")
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	return s
}
