package markdown

import (
	"errors"
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// ErrHTMLInput indicates HTML input could not be converted to markdown.
var ErrHTMLInput = errors.New("HTML to markdown conversion failed")

// HTMLConverter turns generator output delivered as HTML into markdown
// suitable for Parser. Safe for concurrent use.
type HTMLConverter struct {
	conv *converter.Converter
}

// NewHTMLConverter creates an HTMLConverter with CommonMark, GFM table and
// strikethrough support.
func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
				strikethrough.NewStrikethroughPlugin(),
			),
		),
	}
}

// ToMarkdown converts an HTML document or fragment to markdown.
func (c *HTMLConverter) ToMarkdown(html string) (string, error) {
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLInput, err)
	}
	return md, nil
}

var defaultHTMLConverter = NewHTMLConverter()

// FromHTML converts HTML to markdown with a shared default converter.
func FromHTML(html string) (string, error) {
	return defaultHTMLConverter.ToMarkdown(html)
}
