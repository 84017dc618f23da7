package blocks

// Notes:
// - Classify is tested through its observable block sequence only; the
//   table builder has no separate tests because every branch is reachable
//   from Classify input.
// - The "any pipe is a table row" heuristic is pinned by a test so a future
//   change to it is deliberate.

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestClassify - Block extraction
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only blank lines",
			input: "\n  \n\t\n",
			want:  nil,
		},
		{
			name:  "table then paragraph",
			input: "A|B\nC|D\nnext paragraph",
			want: []Block{
				Table(TableGrid{{"A", "B"}, {"C", "D"}}),
				Paragraph("next paragraph"),
			},
		},
		{
			name:  "trailing table is flushed",
			input: "intro\n| x | y |\n| 1 | 2 |",
			want: []Block{
				Paragraph("intro"),
				Table(TableGrid{{"x", "y"}, {"1", "2"}}),
			},
		},
		{
			name:  "ragged rows mirror input",
			input: "a|b|c\nd\ne|f",
			want: []Block{
				Table(TableGrid{{"a", "b", "c"}}),
				Paragraph("d"),
				Table(TableGrid{{"e", "f"}}),
			},
		},
		{
			name:  "markdown separator row is kept as a row",
			input: "| h1 | h2 |\n|---|---|\n| v1 | v2 |",
			want: []Block{
				Table(TableGrid{{"h1", "h2"}, {"---", "---"}, {"v1", "v2"}}),
			},
		},
		{
			name:  "pipe-only line produces no table",
			input: "||\nafter",
			want:  []Block{Paragraph("after")},
		},
		{
			name:  "blank line ends a table",
			input: "a|b\n\nc|d",
			want: []Block{
				Table(TableGrid{{"a", "b"}}),
				Table(TableGrid{{"c", "d"}}),
			},
		},
		{
			name:  "paragraph keeps markers and indentation verbatim",
			input: "  **Objetivo:** comprender  ",
			want:  []Block{Paragraph("  **Objetivo:** comprender  ")},
		},
		{
			name:  "crlf line endings",
			input: "uno\r\ndos\r\n",
			want:  []Block{Paragraph("uno"), Paragraph("dos")},
		},
		{
			name:  "decomposed accents are composed",
			input: "Cafe\u0301|nin\u0303o\nCafe\u0301",
			want: []Block{
				Table(TableGrid{{"Caf\u00e9", "ni\u00f1o"}}),
				Paragraph("Caf\u00e9"),
			},
		},
		{
			name:  "prose with a pipe is classified as a table row",
			input: "either a | b",
			want:  []Block{Table(TableGrid{{"either a", "b"}})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) =\n  %#v\nwant\n  %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_TableRowsAreNeverLost(t *testing.T) {
	t.Parallel()

	input := "a|b\nc|d\ne|f"
	got := Classify(input)
	if len(got) != 1 || got[0].Kind != KindTable {
		t.Fatalf("Classify(%q) = %#v, want a single table", input, got)
	}
	if n := len(got[0].Rows); n != 3 {
		t.Errorf("table rows = %d, want 3", n)
	}
}

// ---------------------------------------------------------------------------
// TestTableGrid_Columns
// ---------------------------------------------------------------------------

func TestTableGrid_Columns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		grid TableGrid
		want int
	}{
		{"empty", nil, 0},
		{"uniform", TableGrid{{"a", "b"}, {"c", "d"}}, 2},
		{"ragged", TableGrid{{"a"}, {"b", "c", "d"}, {"e", "f"}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.grid.Columns(); got != tt.want {
				t.Errorf("Columns() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalize
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"cr", "a\rb", "a\nb"},
		{"combining accent composed", "Fotosi\u0301ntesis", "Fotos\u00edntesis"},
		{"already normal", "ya está", "ya está"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
