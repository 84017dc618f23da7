package preview

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2office/internal/document"
	"github.com/alnah/go-md2office/internal/inline"
)

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// documentNode renders an assembled document inside <div class="document">.
func documentNode(doc document.Document, mono string) *html.Node {
	root := el(atom.Div, "class", "document")
	for _, e := range doc.Elements {
		switch e := e.(type) {
		case *document.Paragraph:
			root.AppendChild(paragraphNode(e, mono))
		case *document.Table:
			root.AppendChild(tableNode(e, mono))
		}
	}
	return root
}

func paragraphNode(p *document.Paragraph, mono string) *html.Node {
	var n *html.Node
	switch {
	case p.Heading > 0:
		n = el(headingAtoms[document.HeadingLevel(p.Heading)-1])
	case p.Code:
		n = el(atom.Pre, "style", css("margin", "0", "font-family", mono))
	case p.Rule && inline.Text(p.Runs) == "":
		return el(atom.Hr)
	default:
		style := css(
			"margin-left", twips(p.Indent),
			"margin-top", twips(p.Spacing.Before),
			"margin-bottom", twips(p.Spacing.After),
		)
		if p.Align == document.AlignJustify {
			style += css("text-align", "justify")
		}
		n = el(atom.P, "style", style)
	}
	return appendAll(n, runNodes(p.Runs, mono)...)
}

func tableNode(t *document.Table, mono string) *html.Node {
	table := el(atom.Table)
	body := el(atom.Tbody)
	table.AppendChild(body)
	for _, row := range t.Rows {
		tr := el(atom.Tr)
		for _, c := range row {
			tr.AppendChild(appendAll(el(atom.Td), runNodes(c.Runs, mono)...))
		}
		body.AppendChild(tr)
	}
	return table
}

// runNodes wraps each run's text in the elements its flags call for.
// Empty runs produce nothing.
func runNodes(runs []inline.Run, mono string) []*html.Node {
	var out []*html.Node
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		n := text(r.Text)
		if r.Color != "" {
			n = appendAll(el(atom.Span, "style", css("color", "#"+r.Color)), n)
		}
		if r.Monospace {
			n = appendAll(el(atom.Code, "style", css("font-family", mono)), n)
		}
		if r.Strike {
			n = appendAll(el(atom.S), n)
		}
		if r.Italic {
			n = appendAll(el(atom.Em), n)
		}
		if r.Bold {
			n = appendAll(el(atom.Strong), n)
		}
		out = append(out, n)
	}
	return out
}

// twips converts twentieths of a point to a CSS length; zero yields "".
func twips(v int) string {
	if v == 0 {
		return ""
	}
	return points(float64(v) / 20)
}
