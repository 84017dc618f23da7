// Package slides splits slide text into slides and lays each one out on a
// fixed-size canvas. Geometry is in inches and font sizes in points; the
// pptx and preview encoders only serialize the computed layout.
package slides

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-md2office/internal/blocks"
	"github.com/alnah/go-md2office/internal/theme"
)

// listPrefix marks a body line as a list item.
const listPrefix = "- "

// Line is one body line of a slide.
type Line struct {
	Text     string
	ListItem bool
	Subtitle bool // first body line only
}

// Slide is the parsed content of one chunk.
type Slide struct {
	Title string
	Lines []Line
}

// Split parses text into slides. Chunks are separated by one or more
// whitespace-only lines; the first line of a chunk is its title and a
// chunk with no non-blank line yields no slide.
func Split(text, titlePrefix string) []Slide {
	var (
		out   []Slide
		chunk []string
	)
	flush := func() {
		if len(chunk) > 0 {
			out = append(out, parse(chunk, titlePrefix))
			chunk = nil
		}
	}

	for _, line := range blocks.Lines(blocks.Normalize(text)) {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		chunk = append(chunk, line)
	}
	flush()
	return out
}

func parse(chunk []string, titlePrefix string) Slide {
	title := chunk[0]
	if titlePrefix != "" {
		title = strings.Replace(title, titlePrefix, "", 1)
	}
	s := Slide{Title: strings.TrimSpace(title)}

	for _, raw := range chunk[1:] {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		l := Line{Text: text, Subtitle: len(s.Lines) == 0}
		if rest, ok := strings.CutPrefix(text, listPrefix); ok {
			l.Text = rest
			l.ListItem = true
		}
		s.Lines = append(s.Lines, l)
	}
	return s
}

// Scale returns the factor applied to body sizes and steps so n lines fit
// between the body top and the bottom margin. It never exceeds 1.
func Scale(n int, st theme.Slide) float64 {
	if n <= 0 {
		return 1
	}
	available := st.Height - st.BodyTop - st.BottomMargin
	estimate := float64(n) * st.LineEstimate
	return math.Min(1, available/estimate)
}

// LengthFactor reduces long lines: 1 up to LongLine runes, LongFactor up to
// VeryLongLine, VeryLongFactor beyond.
func LengthFactor(text string, st theme.Slide) float64 {
	n := utf8.RuneCountInString(text)
	switch {
	case n > st.VeryLongLine:
		return st.VeryLongFactor
	case n > st.LongLine:
		return st.LongFactor
	}
	return 1
}

// MinFontSize is the smallest point size a body line is given. Crowded
// slides would otherwise round down to 0, which PresentationML rejects.
const MinFontSize = 1

// FontSize returns the point size of a body line, never below MinFontSize.
func FontSize(l Line, scale float64, st theme.Slide) int {
	base := st.BodySize
	if l.Subtitle {
		base = st.SubtitleSize
	}
	return max(MinFontSize, int(math.Round(base*LengthFactor(l.Text, st)*scale)))
}
