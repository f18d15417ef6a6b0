package mdtopdf

import (
	"errors"
	"strings"
	"testing"
)

func TestColorschemes(t *testing.T) {
	t.Parallel()

	names := Colorschemes()
	if len(names) == 0 {
		t.Fatal("Colorschemes() returned an empty list")
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate colorscheme %q", name)
		}
		seen[name] = true

		if err := ValidateColorscheme(name); err != nil {
			t.Errorf("listed colorscheme %q rejected: %v", name, err)
		}
	}
}

func TestColorschemes_ContainsDefault(t *testing.T) {
	t.Parallel()

	for _, name := range Colorschemes() {
		if name == DefaultColorscheme {
			return
		}
	}
	t.Fatalf("default colorscheme %q not in Colorschemes()", DefaultColorscheme)
}

func TestValidateColorscheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		scheme  string
		wantErr bool
	}{
		{name: "default scheme", scheme: DefaultColorscheme},
		{name: "monokai", scheme: "monokai"},
		{name: "unknown scheme", scheme: "no-such-scheme", wantErr: true},
		{name: "empty", scheme: "", wantErr: true},
		{name: "case sensitive", scheme: "GitHub-Dark", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateColorscheme(tt.scheme)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownColorscheme) {
					t.Fatalf("ValidateColorscheme(%q) = %v, want ErrUnknownColorscheme", tt.scheme, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateColorscheme(%q) = %v, want nil", tt.scheme, err)
			}
		})
	}
}

// The rejection message must list the valid names themselves, not point
// at a command-line flag: the library has no CLI surface.
func TestValidateColorscheme_ErrorListsValidNames(t *testing.T) {
	t.Parallel()

	err := ValidateColorscheme("no-such-scheme")
	if !errors.Is(err, ErrUnknownColorscheme) {
		t.Fatalf("ValidateColorscheme() = %v, want ErrUnknownColorscheme", err)
	}

	msg := err.Error()
	for _, name := range []string{DefaultColorscheme, "monokai", "dracula"} {
		if !strings.Contains(msg, name) {
			t.Errorf("error does not list valid colorscheme %q: %v", name, err)
		}
	}
	if strings.Contains(msg, "--") {
		t.Errorf("error references a command-line flag: %v", err)
	}
}

func TestColorschemeCSS(t *testing.T) {
	t.Parallel()

	css, err := colorschemeCSS(DefaultColorscheme)
	if err != nil {
		t.Fatalf("colorschemeCSS() error: %v", err)
	}
	if css == "" {
		t.Fatal("colorschemeCSS() returned empty stylesheet")
	}
	if !strings.Contains(css, ".chroma") {
		t.Error("stylesheet does not target the .chroma class")
	}
}

func TestColorschemeCSS_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := colorschemeCSS(DefaultColorscheme)
	if err != nil {
		t.Fatalf("first colorschemeCSS() error: %v", err)
	}
	second, err := colorschemeCSS(DefaultColorscheme)
	if err != nil {
		t.Fatalf("second colorschemeCSS() error: %v", err)
	}
	if first != second {
		t.Error("colorschemeCSS() is not deterministic for a fixed colorscheme")
	}
}

func TestColorschemeCSS_UnknownScheme(t *testing.T) {
	t.Parallel()

	if _, err := colorschemeCSS("no-such-scheme"); !errors.Is(err, ErrUnknownColorscheme) {
		t.Fatalf("colorschemeCSS(unknown) = %v, want ErrUnknownColorscheme", err)
	}
}
