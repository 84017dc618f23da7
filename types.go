package md2office

import (
	"fmt"
	"strings"
)

// Format names an export target. Any string is accepted; values other than
// the constants below export as plain text.
type Format string

// Export formats.
const (
	FormatDocx Format = "docx"
	FormatPptx Format = "pptx"
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

// Formats lists the formats with a dedicated encoder or extension.
func Formats() []Format {
	return []Format{FormatDocx, FormatPptx, FormatPDF, FormatText, FormatHTML}
}

// normalize lowercases and trims f.
func (f Format) normalize() Format {
	return Format(strings.ToLower(strings.TrimSpace(string(f))))
}

// Syntax names the content dialect.
type Syntax string

// Content syntaxes.
const (
	SyntaxPlain    Syntax = "plain"
	SyntaxMarkdown Syntax = "markdown"
	SyntaxHTML     Syntax = "html"
)

// Syntaxes lists the accepted syntaxes.
func Syntaxes() []Syntax {
	return []Syntax{SyntaxPlain, SyntaxMarkdown, SyntaxHTML}
}

// ParseSyntax resolves s case-insensitively. The empty string is plain.
func ParseSyntax(s string) (Syntax, error) {
	switch v := Syntax(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return SyntaxPlain, nil
	case SyntaxPlain, SyntaxMarkdown, SyntaxHTML:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}
}

// Input contains export parameters.
type Input struct {
	Content  string // Text to export (may be empty)
	Format   Format // Target format (empty or unknown = txt)
	Filename string // Human title; slugged into the result file name
	Syntax   Syntax // Content dialect (empty = plain)
	Slides   bool   // With FormatHTML, preview as slides instead of a document
}

// Validate checks the syntax. Content and format are never invalid.
func (in Input) Validate() error {
	_, err := ParseSyntax(string(in.Syntax))
	return err
}

// Result is an exported artifact.
type Result struct {
	Filename    string // Slug plus extension, e.g. "plan-de-clase.docx"
	ContentType string // Media type of Data
	Data        []byte
}

// Extension returns the file extension of r without the dot.
func (r *Result) Extension() string {
	if i := strings.LastIndexByte(r.Filename, '.'); i >= 0 {
		return r.Filename[i+1:]
	}
	return ""
}
