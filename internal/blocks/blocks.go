// Package blocks defines the structural units of exportable content and
// classifies plain generator text into them.
package blocks

import "github.com/alnah/go-md2office/internal/inline"

// Kind identifies the variant held by a Block.
type Kind int

const (
	KindParagraph Kind = iota
	KindTable
	KindHeading
	KindListItem
	KindBreak
	KindCode
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list item"
	case KindBreak:
		return "break"
	case KindCode:
		return "code"
	}
	return "unknown"
}

// Block is one classified structural unit. Which fields are meaningful
// depends on Kind:
//
//	Paragraph  Text (raw line) or Inline (markdown path)
//	Table      Rows
//	Heading    Text, Level (source depth, unclamped), Inline
//	ListItem   Text, Level (nesting, 1-based), Index (1-based), Inline
//	Break      Rule (true for a horizontal rule, false for a spacer)
//	Code       Text (source lines), Language
//
// Blocks are values and are never mutated after creation.
type Block struct {
	Kind     Kind
	Text     string
	Inline   inline.Tokens
	Rows     TableGrid
	Level    int
	Index    int
	Rule     bool
	Language string
}

// Paragraph returns a raw-text paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// Table returns a table block.
func Table(rows TableGrid) Block {
	return Block{Kind: KindTable, Rows: rows}
}

// Heading returns a heading block at the given source depth.
func Heading(nodes inline.Tokens, depth int) Block {
	return Block{Kind: KindHeading, Text: nodes.Text(), Inline: nodes, Level: depth}
}

// ListItem returns a list item at nesting level with a 1-based ordinal.
func ListItem(nodes inline.Tokens, level, index int) Block {
	return Block{Kind: KindListItem, Text: nodes.Text(), Inline: nodes, Level: level, Index: index}
}

// Break returns a separator block. rule marks a visible horizontal rule.
func Break(rule bool) Block {
	return Block{Kind: KindBreak, Rule: rule}
}

// Code returns a code block holding its source lines.
func Code(text, language string) Block {
	return Block{Kind: KindCode, Text: text, Language: language}
}

// Formatted returns a paragraph block carrying pre-tokenized inline nodes.
func Formatted(nodes inline.Tokens) Block {
	return Block{Kind: KindParagraph, Text: nodes.Text(), Inline: nodes}
}

// Source returns the inline source the block's text should be formatted
// from: the token list when present, otherwise the raw bold-marker text.
func (b Block) Source() inline.Source {
	if b.Inline != nil {
		return b.Inline
	}
	return inline.Marked(b.Text)
}
