// Package docx encodes a document.Document as an Office Open XML
// WordprocessingML package (.docx).
package docx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2office/internal/document"
	"github.com/alnah/go-md2office/internal/inline"
	"github.com/alnah/go-md2office/internal/ooxml"
	"github.com/alnah/go-md2office/internal/theme"
)

// ContentType is the media type of a .docx file.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"

	relStyles   = ooxml.NSOfficeRels + "/styles"
	relSettings = ooxml.NSOfficeRels + "/settings"
)

// A4 portrait with one-inch margins, in twips.
const (
	pageWidth  = 11906
	pageHeight = 16838
	pageMargin = 1440
	textWidth  = pageWidth - 2*pageMargin
)

// Sentinel errors for malformed document models.
var (
	ErrEmptyTable = errors.New("table has no rows")
	ErrNoColumns  = errors.New("table has no cells")
	ErrElement    = errors.New("unsupported document element")
)

// Write encodes doc to w. title is stored in the package properties.
// A nil theme uses theme.Default. Nothing is written if the document model
// is malformed.
func Write(w io.Writer, doc document.Document, th *theme.Theme, title string) error {
	if th == nil {
		th = theme.Default()
	}

	body, err := renderBody(doc, th)
	if err != nil {
		return err
	}

	p := ooxml.NewPackage(w)
	p.AddRels("_rels/.rels", []ooxml.Relationship{
		{ID: "rId1", Type: ooxml.RelOfficeDocument, Target: "word/document.xml"},
		{ID: "rId2", Type: ooxml.RelCoreProps, Target: "docProps/core.xml"},
		{ID: "rId3", Type: ooxml.RelExtendedProps, Target: "docProps/app.xml"},
	})
	p.Add("word/document.xml", ctDocument, body)
	p.Add("word/styles.xml", ctStyles, styles(th))
	p.Add("word/settings.xml", ctSettings, settings)
	p.AddRels("word/_rels/document.xml.rels", []ooxml.Relationship{
		{ID: "rId1", Type: relStyles, Target: "styles.xml"},
		{ID: "rId2", Type: relSettings, Target: "settings.xml"},
	})
	p.AddProps(title, "")
	return p.Close()
}

func renderBody(doc document.Document, th *theme.Theme) (string, error) {
	var b strings.Builder
	b.WriteString(ooxml.Header)
	b.WriteString(`<w:document xmlns:w="` + nsW + `" xmlns:r="` + ooxml.NSOfficeRels + `"><w:body>`)

	for i, e := range doc.Elements {
		switch e := e.(type) {
		case *document.Paragraph:
			writeParagraph(&b, e, th)
		case *document.Table:
			if err := writeTable(&b, e, th); err != nil {
				return "", fmt.Errorf("element %d: %w", i, err)
			}
		default:
			return "", fmt.Errorf("element %d: %w: %T", i, ErrElement, e)
		}
	}

	// Word requires a paragraph between a table and the section end.
	if n := len(doc.Elements); n > 0 {
		if _, ok := doc.Elements[n-1].(*document.Table); ok {
			b.WriteString(`<w:p/>`)
		}
	}

	b.WriteString(`<w:sectPr>`)
	b.WriteString(`<w:pgSz w:w="` + ooxml.Itoa(pageWidth) + `" w:h="` + ooxml.Itoa(pageHeight) + `"/>`)
	m := ooxml.Itoa(pageMargin)
	b.WriteString(`<w:pgMar w:top="` + m + `" w:right="` + m + `" w:bottom="` + m + `" w:left="` + m +
		`" w:header="708" w:footer="708" w:gutter="0"/>`)
	b.WriteString(`</w:sectPr></w:body></w:document>`)
	return b.String(), nil
}

func writeParagraph(b *strings.Builder, p *document.Paragraph, th *theme.Theme) {
	b.WriteString(`<w:p><w:pPr>`)
	if p.Heading > 0 {
		b.WriteString(`<w:pStyle w:val="Heading` + ooxml.Itoa(p.Heading) + `"/>`)
	}
	if p.Rule {
		b.WriteString(`<w:pBdr><w:bottom w:val="single" w:color="auto" w:space="1" w:sz="6"/></w:pBdr>`)
	}
	switch {
	case p.Code:
		b.WriteString(`<w:spacing w:before="0" w:after="0"/>`)
	case p.Spacing != (theme.Spacing{}):
		b.WriteString(`<w:spacing w:before="` + ooxml.Itoa(p.Spacing.Before) + `" w:after="` + ooxml.Itoa(p.Spacing.After) + `"/>`)
	}
	if p.Indent > 0 {
		b.WriteString(`<w:ind w:left="` + ooxml.Itoa(p.Indent) + `"/>`)
	}
	switch {
	case p.Align == document.AlignJustify:
		b.WriteString(`<w:jc w:val="both"/>`)
	case p.Heading > 0:
		b.WriteString(`<w:jc w:val="left"/>`)
	}
	b.WriteString(`</w:pPr>`)

	// Headings take their size from the paragraph style.
	size := th.Document.RunSize
	if p.Heading > 0 {
		size = 0
	}
	for _, r := range p.Runs {
		writeRun(b, r, size, th.Fonts.Mono)
	}
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r inline.Run, size int, mono string) {
	b.WriteString(`<w:r><w:rPr>`)
	if r.Monospace {
		f := ooxml.Escape(mono)
		b.WriteString(`<w:rFonts w:ascii="` + f + `" w:hAnsi="` + f + `" w:cs="` + f + `"/>`)
	}
	if r.Bold {
		b.WriteString(`<w:b/><w:bCs/>`)
	}
	if r.Italic {
		b.WriteString(`<w:i/><w:iCs/>`)
	}
	if r.Strike {
		b.WriteString(`<w:strike/>`)
	}
	if r.Color != "" {
		b.WriteString(`<w:color w:val="` + ooxml.Escape(r.Color) + `"/>`)
	}
	if size > 0 {
		s := ooxml.Itoa(size)
		b.WriteString(`<w:sz w:val="` + s + `"/><w:szCs w:val="` + s + `"/>`)
	}
	b.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	b.WriteString(ooxml.Escape(r.Text))
	b.WriteString(`</w:t></w:r>`)
}

func writeTable(b *strings.Builder, t *document.Table, th *theme.Theme) error {
	if len(t.Rows) == 0 {
		return ErrEmptyTable
	}
	cols := t.Columns
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return ErrNoColumns
	}

	colWidth := ooxml.Itoa(textWidth / cols)

	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/><w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b.WriteString(`<w:` + edge + ` w:val="single" w:sz="4" w:space="0" w:color="auto"/>`)
	}
	b.WriteString(`</w:tblBorders></w:tblPr><w:tblGrid>`)
	for range cols {
		b.WriteString(`<w:gridCol w:w="` + colWidth + `"/>`)
	}
	b.WriteString(`</w:tblGrid>`)

	for _, row := range t.Rows {
		b.WriteString(`<w:tr>`)
		// A row needs at least one cell; short rows leave trailing grid
		// columns empty.
		cells := row
		if len(cells) == 0 {
			cells = []document.Cell{{Runs: []inline.Run{{}}}}
		}
		if missing := cols - len(cells); missing > 0 {
			b.WriteString(`<w:trPr><w:gridAfter w:val="` + ooxml.Itoa(missing) + `"/></w:trPr>`)
		}
		for _, cell := range cells {
			b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="` + colWidth + `" w:type="dxa"/></w:tcPr><w:p>`)
			for _, r := range cell.Runs {
				writeRun(b, r, th.Document.RunSize, th.Fonts.Mono)
			}
			b.WriteString(`</w:p></w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
	return nil
}
