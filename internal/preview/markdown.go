package preview

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates markdown could not be rendered to HTML.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// markdownRenderer converts markdown to a sanitized HTML fragment.
type markdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdownRenderer(codeStyle string) *markdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			// Inline styles keep the preview self-contained.
			highlighting.NewHighlighting(highlighting.WithStyle(codeStyle)),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &markdownRenderer{md: md, policy: newPolicy()}
}

// newPolicy allows user-generated content plus the inline styles emitted by
// the highlighter.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").OnElements("pre", "span", "code")
	p.AllowStyles("color", "background-color", "font-weight", "font-style", "text-decoration", "display").Globally()
	return p
}

// fragment renders src and sanitizes the result.
func (r *markdownRenderer) fragment(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
