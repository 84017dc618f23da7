// Package document assembles classified blocks into a word-processing
// document model. The model is format-neutral: every run, spacing and
// indent is resolved here so the encoder only serializes.
package document

import (
	"strconv"

	"github.com/alnah/go-md2office/internal/blocks"
	"github.com/alnah/go-md2office/internal/inline"
	"github.com/alnah/go-md2office/internal/theme"
)

// MaxHeadingLevel is the deepest heading tier a document represents.
const MaxHeadingLevel = 6

// Alignment is paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignJustify
)

// Element is a top-level document element: *Paragraph or *Table.
type Element interface {
	element()
}

// Paragraph is one paragraph of styled runs.
type Paragraph struct {
	Runs    []inline.Run
	Heading int // 1-6, 0 for body text
	Align   Alignment
	Spacing theme.Spacing
	Indent  int  // left indent in twips
	Rule    bool // bottom border
	Code    bool // monospace block, one paragraph per source line
}

// Table is a full-width grid. Rows may be ragged; Columns is the widest row.
type Table struct {
	Rows    [][]Cell
	Columns int
}

// Cell is one table cell.
type Cell struct {
	Runs []inline.Run
}

func (*Paragraph) element() {}
func (*Table) element()     {}

// Document is an ordered sequence of elements.
type Document struct {
	Elements []Element
}

// HeadingLevel clamps a source heading depth to 1..MaxHeadingLevel.
func HeadingLevel(depth int) int {
	return min(max(depth, 1), MaxHeadingLevel)
}

// Marker returns the list marker for the index-th (1-based) item at a
// nesting level: "1." at level 1, "a" at level 2, "1)" at level 3 and the
// bullet glyph below that.
func Marker(level, index int, bullet string) string {
	switch level {
	case 1:
		return strconv.Itoa(index) + "."
	case 2:
		return letters(index)
	case 3:
		return strconv.Itoa(index) + ")"
	}
	return bullet
}

// letters renders n as a lowercase bijective base-26 label: a..z, aa, ab...
func letters(n int) string {
	if n < 1 {
		return ""
	}
	var b []byte
	for n > 0 {
		n--
		b = append(b, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Assemble converts blocks into a Document, preserving order. A nil theme
// uses theme.Default.
func Assemble(bs []blocks.Block, th *theme.Theme) Document {
	if th == nil {
		th = theme.Default()
	}
	a := assembler{theme: th, code: newHighlighter(th.Document.CodeStyle)}

	doc := Document{Elements: make([]Element, 0, len(bs))}
	for _, b := range bs {
		doc.Elements = a.append(doc.Elements, b)
	}
	return doc
}

type assembler struct {
	theme *theme.Theme
	code  *highlighter
}

func (a *assembler) append(out []Element, b blocks.Block) []Element {
	ds := a.theme.Document

	switch b.Kind {
	case blocks.KindTable:
		return append(out, table(b.Rows))

	case blocks.KindParagraph:
		p := &Paragraph{Runs: inline.Format(b.Source())}
		// Markdown paragraphs are typeset as body text; plain generator
		// lines keep the word processor defaults.
		if b.Inline != nil {
			p.Align = AlignJustify
			p.Spacing = ds.ParagraphSpacing
		}
		return append(out, p)

	case blocks.KindHeading:
		level := HeadingLevel(b.Level)
		return append(out, &Paragraph{
			Runs:    inline.Format(b.Source()),
			Heading: level,
			Spacing: ds.HeadingSpacing,
			Rule:    level == 1,
		})

	case blocks.KindListItem:
		marker := inline.Run{Text: Marker(b.Level, b.Index, ds.Bullet) + " ", Bold: true}
		runs := append([]inline.Run{marker}, b.Source().Runs()...)
		return append(out, &Paragraph{
			Runs:    runs,
			Spacing: ds.ListSpacing,
			Indent:  max(b.Level, 1) * ds.ListIndent,
		})

	case blocks.KindBreak:
		if b.Rule {
			return append(out, &Paragraph{Runs: []inline.Run{{}}, Spacing: ds.RuleSpacing, Rule: true})
		}
		return append(out, &Paragraph{Runs: []inline.Run{{}}, Spacing: ds.ParagraphSpacing})

	case blocks.KindCode:
		for _, runs := range a.code.lines(b.Text, b.Language) {
			out = append(out, &Paragraph{Runs: runs, Code: true})
		}
		return out
	}
	return out
}

func table(grid blocks.TableGrid) *Table {
	t := &Table{Rows: make([][]Cell, len(grid)), Columns: grid.Columns()}
	for i, row := range grid {
		cells := make([]Cell, len(row))
		for j, text := range row {
			cells[j] = Cell{Runs: inline.Format(inline.Marked(text))}
		}
		t.Rows[i] = cells
	}
	return t
}
