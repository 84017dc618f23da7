package document

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2office/internal/inline"
)

// highlighter colors code block lines with a chroma style.
type highlighter struct {
	style *chroma.Style
}

func newHighlighter(styleName string) *highlighter {
	// styles.Get falls back to the default style for unknown names.
	return &highlighter{style: styles.Get(styleName)}
}

// lines tokenizes src as a whole and returns monospace runs per source line.
// Unknown languages and lexer failures produce uncolored lines.
func (h *highlighter) lines(src, language string) [][]inline.Run {
	sourceLines := strings.Split(src, "\n")

	lexer := lexers.Get(language)
	if language == "" || lexer == nil {
		return plainLines(sourceLines)
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return plainLines(sourceLines)
	}

	out := make([][]inline.Run, 0, len(sourceLines))
	var cur []inline.Run
	for _, tok := range it.Tokens() {
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, finish(cur))
				cur = nil
			}
			if part == "" {
				continue
			}
			cur = append(cur, h.run(tok.Type, part))
		}
	}
	out = append(out, finish(cur))

	// Lexers append a trailing newline token the source did not have.
	if len(out) > len(sourceLines) {
		out = out[:len(sourceLines)]
	}
	for len(out) < len(sourceLines) {
		out = append(out, finish(nil))
	}
	return out
}

func (h *highlighter) run(tt chroma.TokenType, text string) inline.Run {
	r := inline.Run{Text: text, Monospace: true}
	entry := h.style.Get(tt)
	if entry.Colour.IsSet() {
		r.Color = strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
	}
	r.Bold = entry.Bold == chroma.Yes
	r.Italic = entry.Italic == chroma.Yes
	return r
}

func plainLines(lines []string) [][]inline.Run {
	out := make([][]inline.Run, len(lines))
	for i, l := range lines {
		out[i] = []inline.Run{{Text: l, Monospace: true}}
	}
	return out
}

func finish(runs []inline.Run) []inline.Run {
	if len(runs) == 0 {
		return []inline.Run{{Monospace: true}}
	}
	return runs
}
