package inline

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestMarked_Runs - Bold-marker dialect
// ---------------------------------------------------------------------------

func TestMarked_Runs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Run
	}{
		{
			name: "plain line",
			line: "just text",
			want: []Run{{Text: "just text"}},
		},
		{
			name: "empty line yields one empty run",
			line: "",
			want: []Run{{Text: ""}},
		},
		{
			name: "whole line bold keeps empty artifacts",
			line: "**Objetivo**",
			want: []Run{{Text: ""}, {Text: "Objetivo", Bold: true}, {Text: ""}},
		},
		{
			name: "bold in the middle",
			line: "El **tema** de hoy",
			want: []Run{{Text: "El "}, {Text: "tema", Bold: true}, {Text: " de hoy"}},
		},
		{
			name: "two bold spans",
			line: "**a** y **b**",
			want: []Run{
				{Text: ""}, {Text: "a", Bold: true},
				{Text: " y "}, {Text: "b", Bold: true}, {Text: ""},
			},
		},
		{
			name: "unbalanced marker stays plain",
			line: "a ** b",
			want: []Run{{Text: "a ** b"}},
		},
		{
			name: "lone marker pair stays plain",
			line: "**",
			want: []Run{{Text: "**"}},
		},
		{
			name: "empty bold span",
			line: "x****y",
			want: []Run{{Text: "x"}, {Text: "", Bold: true}, {Text: "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Format(Marked(tt.line))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Format(Marked(%q)) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMarked_RoundTrip(t *testing.T) {
	t.Parallel()

	lines := []string{
		"",
		"plain",
		"**bold**",
		"a **b** c **d** e",
		"***triple***",
		"trailing **",
		"**",
		"x****y",
		"ñandú **pingüino** 日本語",
		"| **cell** |",
	}

	for _, line := range lines {
		runs := Format(Marked(line))
		if got := Markup(runs); got != line {
			t.Errorf("Markup(Format(Marked(%q))) = %q", line, got)
		}
		for _, r := range runs {
			if r.Italic || r.Monospace {
				t.Errorf("Marked(%q) produced non-bold styling: %#v", line, r)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestTokens_Runs - Token dialect
// ---------------------------------------------------------------------------

func TestTokens_Runs(t *testing.T) {
	t.Parallel()

	nodes := Tokens{
		{Kind: NodeText, Text: "Use "},
		{Kind: NodeStrong, Text: "bold"},
		{Kind: NodeText, Text: ", "},
		{Kind: NodeEmphasis, Text: "italic"},
		{Kind: NodeText, Text: " and "},
		{Kind: NodeCode, Text: "x := 1"},
		{Kind: NodeStrike, Text: "old"},
	}

	want := []Run{
		{Text: "Use "},
		{Text: "bold", Bold: true},
		{Text: ", "},
		{Text: "italic", Italic: true},
		{Text: " and "},
		{Text: "x := 1", Monospace: true},
		{Text: "old", Strike: true},
	}

	got := Format(nodes)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Format(Tokens) = %#v, want %#v", got, want)
	}
	if Text(got) != nodes.Text() {
		t.Errorf("Text(runs) = %q, want %q", Text(got), nodes.Text())
	}
}

func TestFormat_EmptySourceNeverEmpty(t *testing.T) {
	t.Parallel()

	got := Format(Tokens(nil))
	if len(got) != 1 || got[0] != (Run{}) {
		t.Errorf("Format(nil tokens) = %#v, want one empty run", got)
	}
}
