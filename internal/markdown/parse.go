// Package markdown tokenizes markdown into export blocks using goldmark.
//
// Only the subset generator output relies on is mapped: headings,
// paragraphs, (nested) lists, horizontal rules, GFM tables, code blocks and
// the strong/emphasis/code-span/strikethrough inline styles. Block quotes are
// flattened into their content; raw HTML is dropped.
package markdown

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2office/internal/blocks"
	"github.com/alnah/go-md2office/internal/inline"
)

// spacerBlankLines is the number of consecutive blank lines between two
// top-level blocks that produces a spacer Break.
const spacerBlankLines = 2

// Parser converts markdown source to blocks. Safe for concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a Parser with GFM tables and strikethrough enabled.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
			),
		),
	}
}

// Parse returns the blocks of src in document order. Line endings and
// composition are normalized as on the plain path.
func (p *Parser) Parse(src string) []blocks.Block {
	source := []byte(blocks.Normalize(src))
	doc := p.md.Parser().Parse(text.NewReader(source))

	w := newWalker(source)
	w.document(doc)
	return w.out
}

// walker accumulates blocks while visiting the goldmark AST.
type walker struct {
	source     []byte
	lineStarts []int
	out        []blocks.Block
	listLevel  int
}

func newWalker(source []byte) *walker {
	starts := []int{0}
	for i, c := range source {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &walker{source: source, lineStarts: starts}
}

// document visits top-level blocks, inserting spacers where the source
// separates two blocks by several blank lines.
func (w *walker) document(doc ast.Node) {
	prevLast := -1
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		start, stop, ok := w.span(n)
		if ok && prevLast >= 0 && w.blankLinesBetween(prevLast, w.lineOf(start)) >= spacerBlankLines {
			w.out = append(w.out, blocks.Break(false))
		}

		w.block(n)

		prevLast = -1
		if ok {
			prevLast = w.lineOf(max(stop-1, start))
		}
	}
}

// block maps one block node.
func (w *walker) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		w.out = append(w.out, blocks.Heading(w.inlines(n), n.Level))

	case *ast.Paragraph, *ast.TextBlock:
		w.out = append(w.out, blocks.Formatted(w.inlines(n)))

	case *ast.List:
		w.list(n)

	case *ast.ThematicBreak:
		w.out = append(w.out, blocks.Break(true))

	case *ast.FencedCodeBlock:
		w.out = append(w.out, blocks.Code(w.lines(n), string(n.Language(w.source))))

	case *ast.CodeBlock:
		w.out = append(w.out, blocks.Code(w.lines(n), ""))

	case *east.Table:
		w.out = append(w.out, blocks.Table(w.table(n)))

	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			w.block(c)
		}
	}
}

// list emits one ListItem per item. Ordinals restart at 1 for every list and
// ignore the source numbering; nested lists go one level deeper.
func (w *walker) list(n *ast.List) {
	w.listLevel++
	defer func() { w.listLevel-- }()

	index := 0
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		index++
		w.listItem(item, index)
	}
}

// listItem emits the item from its first text child; any further children
// (extra paragraphs, nested lists, code) follow it as their own blocks.
// An item that opens with a block child gets no marker paragraph of its own.
func (w *walker) listItem(item ast.Node, index int) {
	var nodes inline.Tokens
	rest := item.FirstChild()
	if rest != nil {
		switch rest.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			nodes = w.inlines(rest)
			rest = rest.NextSibling()
		}
	}

	if nodes != nil || rest == nil {
		w.out = append(w.out, blocks.ListItem(nodes, w.listLevel, index))
	}

	for ; rest != nil; rest = rest.NextSibling() {
		w.block(rest)
	}
}

// table converts a GFM table into a grid. Strong text inside cells is
// written back as **...** so cells share the bold-marker formatting path.
func (w *walker) table(n *east.Table) blocks.TableGrid {
	var grid blocks.TableGrid
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, inline.Markup(w.inlines(cell).Runs()))
		}
		grid = append(grid, cells)
	}
	return grid
}

// inlines flattens the inline children of n into tokens.
func (w *walker) inlines(n ast.Node) inline.Tokens {
	var nodes inline.Tokens
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		nodes = w.appendInline(nodes, c)
	}
	return nodes
}

func (w *walker) appendInline(nodes inline.Tokens, n ast.Node) inline.Tokens {
	switch n := n.(type) {
	case *ast.Text:
		return appendText(nodes, w.textValue(n))

	case *ast.String:
		return appendText(nodes, string(n.Value))

	case *ast.Emphasis:
		kind := inline.NodeEmphasis
		if n.Level >= 2 {
			kind = inline.NodeStrong
		}
		return append(nodes, inline.Node{Kind: kind, Text: w.plain(n)})

	case *ast.CodeSpan:
		return append(nodes, inline.Node{Kind: inline.NodeCode, Text: w.plain(n)})

	case *east.Strikethrough:
		return append(nodes, inline.Node{Kind: inline.NodeStrike, Text: w.plain(n)})

	case *ast.AutoLink:
		return appendText(nodes, string(n.Label(w.source)))

	case *ast.RawHTML:
		return nodes
	}

	// Links, images and anything else contribute their children's text.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		nodes = w.appendInline(nodes, c)
	}
	return nodes
}

// appendText merges consecutive plain text; goldmark splits text at every
// delimiter candidate.
func appendText(nodes inline.Tokens, s string) inline.Tokens {
	if s == "" {
		return nodes
	}
	if last := len(nodes) - 1; last >= 0 && nodes[last].Kind == inline.NodeText {
		nodes[last].Text += s
		return nodes
	}
	return append(nodes, inline.Node{Kind: inline.NodeText, Text: s})
}

// plain concatenates all descendant text of n, dropping nested styling.
func (w *walker) plain(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.WriteString(w.textValue(c))
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// textValue returns the text of t; line breaks inside a paragraph become spaces.
func (w *walker) textValue(t *ast.Text) string {
	s := string(t.Segment.Value(w.source))
	if t.SoftLineBreak() || t.HardLineBreak() {
		s += " "
	}
	return s
}

// lines returns the raw content lines of a code block without the final newline.
func (w *walker) lines(n ast.Node) string {
	var b strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(w.source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// span returns the byte range covered by the text of n.
func (w *walker) span(n ast.Node) (start, stop int, ok bool) {
	if t, isText := n.(*ast.Text); isText {
		return t.Segment.Start, t.Segment.Stop, true
	}
	if n.Type() == ast.TypeBlock {
		if segs := n.Lines(); segs != nil && segs.Len() > 0 {
			return segs.At(0).Start, segs.At(segs.Len() - 1).Stop, true
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cStart, cStop, cOK := w.span(c)
		if !cOK {
			continue
		}
		if !ok {
			start = cStart
			ok = true
		}
		stop = cStop
	}
	return start, stop, ok
}

// lineOf returns the 0-based line holding byte offset.
func (w *walker) lineOf(offset int) int {
	return sort.Search(len(w.lineStarts), func(i int) bool {
		return w.lineStarts[i] > offset
	}) - 1
}

// blankLinesBetween counts whitespace-only lines strictly between two lines.
func (w *walker) blankLinesBetween(from, to int) int {
	count := 0
	for line := from + 1; line < to; line++ {
		if strings.TrimSpace(string(w.lineBytes(line))) == "" {
			count++
		}
	}
	return count
}

func (w *walker) lineBytes(line int) []byte {
	start := w.lineStarts[line]
	end := len(w.source)
	if line+1 < len(w.lineStarts) {
		end = w.lineStarts[line+1]
	}
	return w.source[start:end]
}

var defaultParser = NewParser()

// Parse tokenizes src with a shared default Parser.
func Parse(src string) []blocks.Block {
	return defaultParser.Parse(src)
}
