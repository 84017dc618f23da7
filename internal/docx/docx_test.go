package docx

// Notes:
// - Output is checked structurally: the archive opens, every XML part is
//   well-formed, and document.xml holds the expected markup fragments.
//   Rendering fidelity in Word is not tested.

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/alnah/go-md2office/internal/blocks"
	"github.com/alnah/go-md2office/internal/document"
	"github.com/alnah/go-md2office/internal/inline"
	"github.com/alnah/go-md2office/internal/markdown"
)

// unpack returns the parts of a zip archive by name and fails on malformed XML.
func unpack(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		wellFormed(t, f.Name, content)
		parts[f.Name] = string(content)
	}
	return parts
}

func wellFormed(t *testing.T, name string, content []byte) {
	t.Helper()

	d := xml.NewDecoder(bytes.NewReader(content))
	for {
		_, err := d.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("%s is not well-formed XML: %v", name, err)
		}
	}
}

func write(t *testing.T, doc document.Document) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	if err := Write(&buf, doc, nil, "Plan de clase"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return unpack(t, buf.Bytes())
}

// ---------------------------------------------------------------------------
// TestWrite - Package structure
// ---------------------------------------------------------------------------

func TestWrite_PackageParts(t *testing.T) {
	t.Parallel()

	parts := write(t, document.Assemble(blocks.Classify("Hola"), nil))

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/settings.xml",
		"word/_rels/document.xml.rels",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
	if !strings.Contains(parts["[Content_Types].xml"], ctDocument) {
		t.Error("content types missing main document override")
	}
	if !strings.Contains(parts["docProps/core.xml"], "<dc:title>Plan de clase</dc:title>") {
		t.Error("core properties missing title")
	}
	for i := 1; i <= 6; i++ {
		id := `w:styleId="Heading` + string(rune('0'+i)) + `"`
		if !strings.Contains(parts["word/styles.xml"], id) {
			t.Errorf("styles missing %s", id)
		}
	}
}

func TestWrite_EmptyDocument(t *testing.T) {
	t.Parallel()

	parts := write(t, document.Document{})
	body := parts["word/document.xml"]
	if !strings.Contains(body, "<w:body><w:sectPr>") {
		t.Errorf("empty document body = %s", body)
	}
}

// ---------------------------------------------------------------------------
// TestWrite - Body markup
// ---------------------------------------------------------------------------

func TestWrite_PlainContent(t *testing.T) {
	t.Parallel()

	content := "Intro **clave** & <fin>\n| Fase | Minutos |\n| **Inicio** | 10 |\n| Cierre |"
	body := write(t, document.Assemble(blocks.Classify(content), nil))["word/document.xml"]

	wants := []string{
		`<w:t xml:space="preserve">Intro </w:t>`,
		`<w:b/><w:bCs/><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr><w:t xml:space="preserve">clave</w:t>`,
		`&amp; &lt;fin&gt;`,
		`<w:tblW w:w="5000" w:type="pct"/>`,
		`<w:gridCol w:w="4513"/><w:gridCol w:w="4513"/></w:tblGrid>`,
		`<w:trPr><w:gridAfter w:val="1"/></w:trPr>`,
		`<w:t xml:space="preserve">Inicio</w:t>`,
		`</w:tbl><w:p/><w:sectPr>`,
	}
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %s", want)
		}
	}
	if strings.Contains(body, "**") {
		t.Error("bold markers leaked into output")
	}
}

func TestWrite_MarkdownContent(t *testing.T) {
	t.Parallel()

	src := "# Título\n\nTexto *suave* y `code` y ~~no~~.\n\n- uno\n  - dos\n\n---\n"
	body := write(t, document.Assemble(markdown.NewParser().Parse(src), nil))["word/document.xml"]

	wants := []string{
		`<w:pStyle w:val="Heading1"/><w:pBdr><w:bottom w:val="single"`,
		`<w:spacing w:before="240" w:after="120"/><w:jc w:val="left"/>`,
		`<w:jc w:val="both"/>`,
		`<w:i/><w:iCs/>`,
		`<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New" w:cs="Courier New"/>`,
		`<w:strike/>`,
		`<w:t xml:space="preserve">1. </w:t>`,
		`<w:ind w:left="1440"/>`,
		`<w:t xml:space="preserve">a </w:t>`,
		`<w:spacing w:before="240" w:after="240"/>`,
	}
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %s", want)
		}
	}
}

func TestWrite_HeadingClampInOutput(t *testing.T) {
	t.Parallel()

	doc := document.Assemble([]blocks.Block{
		blocks.Heading(inline.Tokens{{Kind: inline.NodeText, Text: "x"}}, 9),
	}, nil)
	body := write(t, doc)["word/document.xml"]
	if !strings.Contains(body, `<w:pStyle w:val="Heading6"/>`) {
		t.Errorf("depth 9 heading not clamped to Heading6:\n%s", body)
	}
}

// ---------------------------------------------------------------------------
// TestWrite - Encoding failures
// ---------------------------------------------------------------------------

type bogus struct{ document.Paragraph }

func TestWrite_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     document.Document
		wantErr error
	}{
		{
			name:    "table without rows",
			doc:     document.Document{Elements: []document.Element{&document.Table{}}},
			wantErr: ErrEmptyTable,
		},
		{
			name:    "table without cells",
			doc:     document.Document{Elements: []document.Element{&document.Table{Rows: [][]document.Cell{{}}}}},
			wantErr: ErrNoColumns,
		},
		{
			name:    "unknown element",
			doc:     document.Document{Elements: []document.Element{&bogus{}}},
			wantErr: ErrElement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := Write(&buf, tt.doc, nil, "x")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Write() error = %v, want %v", err, tt.wantErr)
			}
			if buf.Len() != 0 {
				t.Errorf("Write() wrote %d bytes on failure", buf.Len())
			}
		})
	}
}
