package md2office

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/alnah/go-md2office/internal/blocks"
	"github.com/alnah/go-md2office/internal/document"
	"github.com/alnah/go-md2office/internal/docx"
	"github.com/alnah/go-md2office/internal/pptx"
	"github.com/alnah/go-md2office/internal/preview"
	"github.com/alnah/go-md2office/internal/slides"
)

// Content types of the raw-text exports.
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypePDF  = "application/pdf"
)

// Export encodes in.Content in in.Format. Unknown formats produce the raw
// content as .txt; the content itself is never rejected. Encoder failures,
// including internal panics, return an error wrapping ErrEncoding.
func (c *Converter) Export(in Input) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: internal error: %v", ErrEncoding, r)
		}
	}()

	syntax, err := ParseSyntax(string(in.Syntax))
	if err != nil {
		return nil, err
	}

	switch in.Format.normalize() {
	case FormatDocx:
		return c.exportDocx(in, syntax)
	case FormatPptx:
		return c.exportPptx(in, syntax)
	case FormatHTML:
		return c.exportHTML(in, syntax)
	case FormatPDF:
		return raw(in, FormatPDF, ContentTypePDF), nil
	default:
		return raw(in, FormatText, ContentTypeText), nil
	}
}

// raw returns the content verbatim.
func raw(in Input, ext Format, contentType string) *Result {
	return &Result{
		Filename:    Filename(in.Filename, string(ext)),
		ContentType: contentType,
		Data:        []byte(in.Content),
	}
}

// source returns the content as the syntax the block pipeline reads:
// HTML becomes markdown, everything else is unchanged.
func (c *Converter) source(in Input, syntax Syntax) (string, Syntax, error) {
	if syntax != SyntaxHTML {
		return in.Content, syntax, nil
	}
	md, err := c.html.ToMarkdown(in.Content)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return md, SyntaxMarkdown, nil
}

func (c *Converter) blocks(content string, syntax Syntax) []blocks.Block {
	if syntax == SyntaxMarkdown {
		return c.parser.Parse(content)
	}
	return blocks.Classify(content)
}

func (c *Converter) exportDocx(in Input, syntax Syntax) (*Result, error) {
	content, syntax, err := c.source(in, syntax)
	if err != nil {
		return nil, err
	}

	doc := document.Assemble(c.blocks(content, syntax), c.theme)

	var buf bytes.Buffer
	if err := docx.Write(&buf, doc, c.theme, in.Filename); err != nil {
		return nil, fmt.Errorf("%w: docx: %v", ErrEncoding, err)
	}
	return &Result{
		Filename:    Filename(in.Filename, string(FormatDocx)),
		ContentType: docx.ContentType,
		Data:        buf.Bytes(),
	}, nil
}

func (c *Converter) exportPptx(in Input, syntax Syntax) (*Result, error) {
	content, _, err := c.source(in, syntax)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pptx.Write(&buf, slides.Build(content, c.theme), c.theme, in.Filename); err != nil {
		return nil, fmt.Errorf("%w: pptx: %v", ErrEncoding, err)
	}
	return &Result{
		Filename:    Filename(in.Filename, string(FormatPptx)),
		ContentType: pptx.ContentType,
		Data:        buf.Bytes(),
	}, nil
}

func (c *Converter) exportHTML(in Input, syntax Syntax) (*Result, error) {
	content, syntax, err := c.source(in, syntax)
	if err != nil {
		return nil, err
	}

	var page string
	switch {
	case in.Slides:
		page, err = c.preview.Slides(in.Filename, slides.Build(content, c.theme))
	case syntax == SyntaxMarkdown:
		page, err = c.preview.Markdown(in.Filename, content)
	default:
		page, err = c.preview.Document(in.Filename, document.Assemble(blocks.Classify(content), c.theme))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: html: %v", ErrEncoding, err)
	}
	return &Result{
		Filename:    Filename(in.Filename, string(FormatHTML)),
		ContentType: preview.ContentType,
		Data:        []byte(page),
	}, nil
}

var (
	defaultConverter     *Converter
	defaultConverterErr  error
	defaultConverterOnce sync.Once
)

// Export encodes content with a shared Converter using the built-in theme.
// Content is read as plain text.
func Export(content string, format Format, filename string) (*Result, error) {
	defaultConverterOnce.Do(func() {
		defaultConverter, defaultConverterErr = NewConverter()
	})
	if defaultConverterErr != nil {
		return nil, defaultConverterErr
	}
	return defaultConverter.Export(Input{Content: content, Format: format, Filename: filename})
}
