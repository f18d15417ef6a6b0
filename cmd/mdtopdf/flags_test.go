package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantOutput     string
		wantScheme     string
		wantPositional []string
		wantVersion    bool
		wantList       bool
		wantHelp       bool
	}{
		{
			name:           "positional only",
			args:           []string{"README.md"},
			wantPositional: []string{"README.md"},
		},
		{
			name:           "short flags",
			args:           []string{"-o", "out.pdf", "-c", "monokai", "in.md"},
			wantOutput:     "out.pdf",
			wantScheme:     "monokai",
			wantPositional: []string{"in.md"},
		},
		{
			name:           "long flags",
			args:           []string{"--output", "out.pdf", "--colorscheme", "monokai", "in.md"},
			wantOutput:     "out.pdf",
			wantScheme:     "monokai",
			wantPositional: []string{"in.md"},
		},
		{
			name:        "version",
			args:        []string{"-v"},
			wantVersion: true,
		},
		{
			name:     "list colorschemes",
			args:     []string{"--list-colorschemes"},
			wantList: true,
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantHelp: true,
		},
		{
			name:           "no arguments",
			args:           nil,
			wantPositional: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, positional, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) error: %v", tt.args, err)
			}

			if flags.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", flags.output, tt.wantOutput)
			}
			if flags.colorscheme != tt.wantScheme {
				t.Errorf("colorscheme = %q, want %q", flags.colorscheme, tt.wantScheme)
			}
			if flags.version != tt.wantVersion {
				t.Errorf("version = %v, want %v", flags.version, tt.wantVersion)
			}
			if flags.listSchemes != tt.wantList {
				t.Errorf("listSchemes = %v, want %v", flags.listSchemes, tt.wantList)
			}
			if flags.help != tt.wantHelp {
				t.Errorf("help = %v, want %v", flags.help, tt.wantHelp)
			}
			if len(positional) != len(tt.wantPositional) {
				t.Fatalf("positional = %v, want %v", positional, tt.wantPositional)
			}
			for i := range positional {
				if positional[i] != tt.wantPositional[i] {
					t.Errorf("positional[%d] = %q, want %q", i, positional[i], tt.wantPositional[i])
				}
			}
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--no-such-flag"})
	if !errors.Is(err, errUsage) {
		t.Fatalf("parseFlags(unknown) = %v, want errUsage", err)
	}
}

func TestParseFlags_MissingFlagValue(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"-o"})
	if !errors.Is(err, errUsage) {
		t.Fatalf("parseFlags(-o without value) = %v, want errUsage", err)
	}
}
