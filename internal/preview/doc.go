// Package preview renders exportable content as a standalone HTML page, the
// in-browser counterpart of the docx and pptx encoders.
//
// Three inputs are supported:
//   - markdown source, converted with goldmark (GFM, chroma highlighting)
//     and sanitized with bluemonday
//   - an assembled document.Document (plain generator text)
//   - a laid-out slides.Presentation, drawn with absolutely positioned boxes
//
// The last two are built as golang.org/x/net/html node trees, so text is
// escaped by the renderer and never parsed as markup.
package preview
