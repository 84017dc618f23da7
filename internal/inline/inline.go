// Package inline turns a line of inline-formatted text into styled runs.
//
// Two input dialects share one capability through the Source interface:
//   - Marked: raw text where **double-asterisk** spans are bold
//   - Tokens: a pre-tokenized node list (text, strong, emphasis, code span)
//
// Both produce a non-empty []Run whose texts, in order, account for every
// character of the input.
package inline

import (
	"regexp"
	"strings"
)

// boldMarker delimits a bold span in the Marked dialect.
const boldMarker = "**"

// boldSpan matches the shortest **...** span on a single line.
var boldSpan = regexp.MustCompile(`\*\*.*?\*\*`)

// Run is a contiguous span of text sharing one style.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Monospace bool
	Strike    bool
	Color     string // RRGGBB, empty inherits the paragraph color
}

// Source is an inline representation that can be flattened into runs.
type Source interface {
	Runs() []Run
}

// Format returns the runs for src. The result always holds at least one run.
func Format(src Source) []Run {
	runs := src.Runs()
	if len(runs) == 0 {
		return []Run{{}}
	}
	return runs
}

// Marked is one line in the bold-marker dialect.
type Marked string

// Runs splits the line around **...** spans. Empty segments produced by the
// split are kept as plain runs so the segment structure stays stable.
func (m Marked) Runs() []Run {
	line := string(m)
	matches := boldSpan.FindAllStringIndex(line, -1)

	runs := make([]Run, 0, 2*len(matches)+1)
	prev := 0
	for _, loc := range matches {
		runs = append(runs,
			Run{Text: line[prev:loc[0]]},
			Run{Text: line[loc[0]+len(boldMarker) : loc[1]-len(boldMarker)], Bold: true},
		)
		prev = loc[1]
	}
	return append(runs, Run{Text: line[prev:]})
}

// NodeKind identifies an inline token.
type NodeKind int

const (
	NodeText NodeKind = iota
	NodeStrong
	NodeEmphasis
	NodeCode
	NodeStrike
)

// Node is one flat inline token. Nested styling is not represented: a strong
// node holding emphasis carries the emphasis text without its markers.
type Node struct {
	Kind NodeKind
	Text string
}

// Tokens is a pre-tokenized line in the full inline markdown dialect.
type Tokens []Node

// Runs maps each node to exactly one run.
func (t Tokens) Runs() []Run {
	runs := make([]Run, 0, len(t))
	for _, n := range t {
		r := Run{Text: n.Text}
		switch n.Kind {
		case NodeStrong:
			r.Bold = true
		case NodeEmphasis:
			r.Italic = true
		case NodeCode:
			r.Monospace = true
		case NodeStrike:
			r.Strike = true
		}
		runs = append(runs, r)
	}
	return runs
}

// Text concatenates the visible text of runs.
func Text(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Markup concatenates runs, re-wrapping bold runs in ** markers.
// For runs produced by Marked this reproduces the source line exactly.
func Markup(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Bold {
			b.WriteString(boldMarker)
			b.WriteString(r.Text)
			b.WriteString(boldMarker)
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}

// Text returns the concatenated text of the nodes.
func (t Tokens) Text() string {
	var b strings.Builder
	for _, n := range t {
		b.WriteString(n.Text)
	}
	return b.String()
}
