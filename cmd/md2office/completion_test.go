package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_md2office_completions",
				"complete -o default -F _md2office_completions md2office",
				`"convert serve theme completion version help"`,
				`-f|--format) COMPREPLY=($(compgen -W "docx pptx pdf txt html"`,
				`-o|--output) COMPREPLY=($(compgen -d`,
				"--max-body",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef md2office",
				"_describe 'command' commands",
				`'(-f --format)'{-f,--format}'[output format\: docx, pptx, pdf, txt, html]:format:(docx pptx pdf txt html)'`,
				`'--slides[with --format html, preview as slides]'`,
				`'*:file:_files -g "*.(md|markdown|txt|text|html|htm)"'`,
				`'1:completion:(bash zsh fish powershell)'`,
				"compdef _md2office md2office",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c md2office -f",
				"__fish_md2office_needs_command -a serve",
				"-n '__fish_md2office_using_command convert' -s o -l output -x -a '(__fish_complete_directories)'",
				"-n '__fish_md2office_using_command convert' -l syntax -x -a 'plain markdown html'",
				"-n '__fish_md2office_using_command completion' -x -a 'bash zsh fish powershell'",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter -Native -CommandName md2office",
				"CompletionResult",
				"'serve' = 'Serve the export API over HTTP'",
				"'--addr'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q", want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"", "sh", "tcsh"} {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, shell)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("GenerateCompletion(%q) error = %v, want %v", shell, err, ErrUnsupportedShell)
		}
		if buf.Len() != 0 {
			t.Errorf("GenerateCompletion(%q) wrote output on error", shell)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry built from flag sets
// ---------------------------------------------------------------------------

func TestGetCommands_Flags(t *testing.T) {
	t.Parallel()

	flags := map[string]map[string]flagDef{}
	for _, c := range getCommands() {
		flags[c.Name] = map[string]flagDef{}
		for _, f := range c.Flags {
			flags[c.Name][f.Long] = f
		}
	}

	tests := []struct {
		command   string
		flag      string
		wantShort string
		wantType  flagType
	}{
		{"convert", "output", "o", flagDir},
		{"convert", "format", "f", flagEnum},
		{"convert", "syntax", "", flagEnum},
		{"convert", "config", "c", flagFile},
		{"convert", "theme", "", flagFile},
		{"convert", "workers", "w", flagInt},
		{"convert", "slides", "", flagBool},
		{"serve", "addr", "a", flagString},
		{"serve", "max-body", "", flagInt},
		{"theme", "list", "l", flagBool},
		{"theme", "asset-path", "", flagDir},
	}

	for _, tt := range tests {
		f, ok := flags[tt.command][tt.flag]
		if !ok {
			t.Errorf("%s: missing flag --%s", tt.command, tt.flag)
			continue
		}
		if f.Short != tt.wantShort || f.Type != tt.wantType {
			t.Errorf("%s --%s = short %q type %v, want %q %v", tt.command, tt.flag, f.Short, f.Type, tt.wantShort, tt.wantType)
		}
	}
}

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := runCompletion([]string{"zsh"}, env); err != nil {
		t.Fatalf("runCompletion() error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "#compdef md2office") {
		t.Errorf("stdout = %q, want zsh script", stdout.String()[:min(40, stdout.Len())])
	}
}
