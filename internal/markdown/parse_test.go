package markdown

// Notes:
// - Tests assert on block kinds, levels and flattened text rather than on the
//   full Block value so goldmark's text segmentation details stay private.
// - HTML conversion is covered with a single round trip through Parse; the
//   converter library has its own exhaustive tests.

import (
	"reflect"
	"strings"
	"testing"

	"github.com/alnah/go-md2office/internal/blocks"
	"github.com/alnah/go-md2office/internal/inline"
)

// summary is a compact, comparable view of a block.
type summary struct {
	Kind  blocks.Kind
	Text  string
	Level int
	Index int
}

func summarize(bs []blocks.Block) []summary {
	out := make([]summary, len(bs))
	for i, b := range bs {
		out[i] = summary{Kind: b.Kind, Text: b.Text, Level: b.Level, Index: b.Index}
	}
	return out
}

// ---------------------------------------------------------------------------
// TestParser_Parse - Block structure
// ---------------------------------------------------------------------------

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  []summary
	}{
		{
			name:  "empty",
			input: "",
			want:  []summary{},
		},
		{
			name:  "headings keep source depth",
			input: "# Uno\n\n### Tres\n\n###### Seis",
			want: []summary{
				{Kind: blocks.KindHeading, Text: "Uno", Level: 1},
				{Kind: blocks.KindHeading, Text: "Tres", Level: 3},
				{Kind: blocks.KindHeading, Text: "Seis", Level: 6},
			},
		},
		{
			name:  "paragraph soft break becomes space",
			input: "primera línea\nsegunda línea",
			want: []summary{
				{Kind: blocks.KindParagraph, Text: "primera línea segunda línea"},
			},
		},
		{
			name:  "flat list ordinals start at one",
			input: "- a\n- b\n- c",
			want: []summary{
				{Kind: blocks.KindListItem, Text: "a", Level: 1, Index: 1},
				{Kind: blocks.KindListItem, Text: "b", Level: 1, Index: 2},
				{Kind: blocks.KindListItem, Text: "c", Level: 1, Index: 3},
			},
		},
		{
			name:  "ordered list ignores source start",
			input: "5. cinco\n6. seis",
			want: []summary{
				{Kind: blocks.KindListItem, Text: "cinco", Level: 1, Index: 1},
				{Kind: blocks.KindListItem, Text: "seis", Level: 1, Index: 2},
			},
		},
		{
			name:  "nested lists go one level deeper",
			input: "1. uno\n   - a\n   - b\n     - i\n2. dos",
			want: []summary{
				{Kind: blocks.KindListItem, Text: "uno", Level: 1, Index: 1},
				{Kind: blocks.KindListItem, Text: "a", Level: 2, Index: 1},
				{Kind: blocks.KindListItem, Text: "b", Level: 2, Index: 2},
				{Kind: blocks.KindListItem, Text: "i", Level: 3, Index: 1},
				{Kind: blocks.KindListItem, Text: "dos", Level: 1, Index: 2},
			},
		},
		{
			name:  "item opening with a nested list has no marker paragraph",
			input: "- - x\n- y",
			want: []summary{
				{Kind: blocks.KindListItem, Text: "x", Level: 2, Index: 1},
				{Kind: blocks.KindListItem, Text: "y", Level: 1, Index: 2},
			},
		},
		{
			name:  "empty item keeps its marker",
			input: "-\n- y",
			want: []summary{
				{Kind: blocks.KindListItem, Text: "", Level: 1, Index: 1},
				{Kind: blocks.KindListItem, Text: "y", Level: 1, Index: 2},
			},
		},
		{
			name:  "decomposed accents are composed",
			input: "# Cafe\u0301\n\nnin\u0303o",
			want: []summary{
				{Kind: blocks.KindHeading, Text: "Caf\u00e9", Level: 1},
				{Kind: blocks.KindParagraph, Text: "ni\u00f1o"},
			},
		},
		{
			name:  "horizontal rule",
			input: "antes\n\n---\n\ndespués",
			want: []summary{
				{Kind: blocks.KindParagraph, Text: "antes"},
				{Kind: blocks.KindBreak},
				{Kind: blocks.KindParagraph, Text: "después"},
			},
		},
		{
			name:  "single blank line adds no spacer",
			input: "uno\n\ndos",
			want: []summary{
				{Kind: blocks.KindParagraph, Text: "uno"},
				{Kind: blocks.KindParagraph, Text: "dos"},
			},
		},
		{
			name:  "two blank lines add a spacer",
			input: "uno\n\n\ndos",
			want: []summary{
				{Kind: blocks.KindParagraph, Text: "uno"},
				{Kind: blocks.KindBreak},
				{Kind: blocks.KindParagraph, Text: "dos"},
			},
		},
		{
			name:  "fenced code block",
			input: "```go\nx := 1\ny := 2\n```",
			want: []summary{
				{Kind: blocks.KindCode, Text: "x := 1\ny := 2"},
			},
		},
		{
			name:  "blockquote is flattened",
			input: "> citado",
			want: []summary{
				{Kind: blocks.KindParagraph, Text: "citado"},
			},
		},
		{
			name:  "raw html is dropped",
			input: "a <b>b</b> c",
			want: []summary{
				{Kind: blocks.KindParagraph, Text: "a b c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := summarize(p.Parse(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) =\n  %+v\nwant\n  %+v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParser_Parse_Inline - Inline tokens
// ---------------------------------------------------------------------------

func TestParser_Parse_Inline(t *testing.T) {
	t.Parallel()

	got := NewParser().Parse("Texto **fuerte**, *énfasis*, `código` y ~~tachado~~.")
	if len(got) != 1 {
		t.Fatalf("Parse() returned %d blocks, want 1", len(got))
	}

	want := inline.Tokens{
		{Kind: inline.NodeText, Text: "Texto "},
		{Kind: inline.NodeStrong, Text: "fuerte"},
		{Kind: inline.NodeText, Text: ", "},
		{Kind: inline.NodeEmphasis, Text: "énfasis"},
		{Kind: inline.NodeText, Text: ", "},
		{Kind: inline.NodeCode, Text: "código"},
		{Kind: inline.NodeText, Text: " y "},
		{Kind: inline.NodeStrike, Text: "tachado"},
		{Kind: inline.NodeText, Text: "."},
	}
	if !reflect.DeepEqual(got[0].Inline, want) {
		t.Errorf("Inline =\n  %+v\nwant\n  %+v", got[0].Inline, want)
	}
}

func TestParser_Parse_NestedStylingIsFlat(t *testing.T) {
	t.Parallel()

	got := NewParser().Parse("**fuerte con *énfasis* dentro**")
	if len(got) != 1 || len(got[0].Inline) != 1 {
		t.Fatalf("Parse() = %+v, want one paragraph with one node", got)
	}
	node := got[0].Inline[0]
	if node.Kind != inline.NodeStrong || node.Text != "fuerte con énfasis dentro" {
		t.Errorf("node = %+v, want single strong node with flattened text", node)
	}
}

func TestParser_Parse_LinkKeepsText(t *testing.T) {
	t.Parallel()

	got := NewParser().Parse("ver [la guía](https://example.com) y <https://example.org>")
	if len(got) != 1 {
		t.Fatalf("Parse() returned %d blocks, want 1", len(got))
	}
	if want := "ver la guía y https://example.org"; got[0].Text != want {
		t.Errorf("Text = %q, want %q", got[0].Text, want)
	}
}

// ---------------------------------------------------------------------------
// TestParser_Parse_Table - GFM tables
// ---------------------------------------------------------------------------

func TestParser_Parse_Table(t *testing.T) {
	t.Parallel()

	input := "| Fase | Minutos |\n|---|---|\n| **Inicio** | 10 |\n| Cierre | 5 |"
	got := NewParser().Parse(input)
	if len(got) != 1 || got[0].Kind != blocks.KindTable {
		t.Fatalf("Parse() = %+v, want one table", got)
	}

	want := blocks.TableGrid{
		{"Fase", "Minutos"},
		{"**Inicio**", "10"},
		{"Cierre", "5"},
	}
	if !reflect.DeepEqual(got[0].Rows, want) {
		t.Errorf("Rows = %q, want %q", got[0].Rows, want)
	}
}

// ---------------------------------------------------------------------------
// TestHTMLConverter_ToMarkdown
// ---------------------------------------------------------------------------

func TestHTMLConverter_ToMarkdown(t *testing.T) {
	t.Parallel()

	md, err := NewHTMLConverter().ToMarkdown("<h2>Objetivos</h2><ul><li><strong>Leer</strong></li><li>Escribir</li></ul>")
	if err != nil {
		t.Fatalf("ToMarkdown() error = %v", err)
	}
	if !strings.Contains(md, "## Objetivos") {
		t.Errorf("markdown %q missing heading", md)
	}

	got := summarize(NewParser().Parse(md))
	want := []summary{
		{Kind: blocks.KindHeading, Text: "Objetivos", Level: 2},
		{Kind: blocks.KindListItem, Text: "Leer", Level: 1, Index: 1},
		{Kind: blocks.KindListItem, Text: "Escribir", Level: 1, Index: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(ToMarkdown()) =\n  %+v\nwant\n  %+v", got, want)
	}
}

func TestFromHTML_ThenParse(t *testing.T) {
	t.Parallel()

	md, err := FromHTML("<p>uno <em>dos</em></p>")
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	got := summarize(Parse(md))
	want := []summary{{Kind: blocks.KindParagraph, Text: "uno dos"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(FromHTML()) = %+v, want %+v", got, want)
	}
}
