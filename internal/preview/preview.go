package preview

import (
	"fmt"
	"html"

	nethtml "golang.org/x/net/html"

	"github.com/alnah/go-md2office/internal/document"
	"github.com/alnah/go-md2office/internal/slides"
	"github.com/alnah/go-md2office/internal/theme"
)

// ContentType is the media type of a rendered preview.
const ContentType = "text/html; charset=utf-8"

// pageTemplate wraps a rendered body in a complete HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// Renderer builds preview pages. Safe for concurrent use.
type Renderer struct {
	md   *markdownRenderer
	css  string
	mono string
}

// NewRenderer creates a Renderer using th for code colors and fonts and css
// as the page stylesheet. A nil theme uses theme.Default.
func NewRenderer(th *theme.Theme, css string) *Renderer {
	if th == nil {
		th = theme.Default()
	}
	return &Renderer{
		md:   newMarkdownRenderer(th.Document.CodeStyle),
		css:  css,
		mono: th.Fonts.Mono,
	}
}

// Markdown renders markdown source as a document page.
func (r *Renderer) Markdown(title, src string) (string, error) {
	body, err := r.md.fragment(src)
	if err != nil {
		return "", err
	}
	return r.page(title, `<div class="document">`+body+`</div>`), nil
}

// Document renders an assembled document as a page.
func (r *Renderer) Document(title string, doc document.Document) (string, error) {
	return r.nodes(title, documentNode(doc, r.mono))
}

// Slides renders a laid-out presentation as a page.
func (r *Renderer) Slides(title string, pres slides.Presentation) (string, error) {
	return r.nodes(title, slidesNode(pres))
}

func (r *Renderer) nodes(title string, root *nethtml.Node) (string, error) {
	body, err := render(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return r.page(title, body), nil
}

func (r *Renderer) page(title, body string) string {
	return InjectCSS(fmt.Sprintf(pageTemplate, html.EscapeString(title), body), r.css)
}
