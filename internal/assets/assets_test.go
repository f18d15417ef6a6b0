package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle_Vendored(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle("github-markdown")
	if err != nil {
		t.Fatalf("LoadStyle(github-markdown) error: %v", err)
	}
	if css == "" {
		t.Fatal("LoadStyle() returned empty stylesheet")
	}
	if !strings.Contains(css, ".markdown-body") {
		t.Error("vendored stylesheet does not target .markdown-body")
	}
}

func TestLoadStyle_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadStyle("no-such-style")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("LoadStyle(unknown) = %v, want ErrStyleNotFound", err)
	}
}

func TestLoadStyle_InvalidNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
	}{
		{name: "empty", style: ""},
		{name: "path separator", style: "sub/style"},
		{name: "backslash", style: `sub\style`},
		{name: "traversal", style: "../secrets"},
		{name: "hidden file", style: ".hidden"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadStyle(tt.style)
			if !errors.Is(err, ErrInvalidAssetName) {
				t.Fatalf("LoadStyle(%q) = %v, want ErrInvalidAssetName", tt.style, err)
			}
		})
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names, err := StyleNames()
	if err != nil {
		t.Fatalf("StyleNames() error: %v", err)
	}

	for _, name := range names {
		if name == "github-markdown" {
			return
		}
	}
	t.Errorf("StyleNames() = %v, missing github-markdown", names)
}
