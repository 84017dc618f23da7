package blocks

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// Normalize prepares generator output for classification: unified line
// endings and NFC-composed text.
func Normalize(text string) string {
	return norm.NFC.String(NormalizeLineEndings(text))
}

// Lines splits text into lines after normalizing line endings.
func Lines(text string) []string {
	return strings.Split(NormalizeLineEndings(text), "\n")
}

// Classify scans text line by line and returns its blocks in source order.
//
// Consecutive pipe lines form one Table. Any other non-blank line becomes a
// Paragraph holding the line verbatim, inline markers included. Blank lines
// are dropped. Text is NFC-composed first. Every input, including "", is
// accepted.
func Classify(text string) []Block {
	var (
		out   []Block
		table tableBuilder
	)

	for _, line := range Lines(Normalize(text)) {
		if IsTableRow(line) {
			table.add(line)
			continue
		}

		out = table.flush(out)

		if strings.TrimSpace(line) != "" {
			out = append(out, Paragraph(line))
		}
	}

	// Input may end while a table is still open.
	return table.flush(out)
}
