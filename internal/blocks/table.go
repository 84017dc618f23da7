package blocks

import "strings"

// cellSeparator delimits cells in a pipe table row.
const cellSeparator = "|"

// TableGrid is an ordered list of rows of cell text. Rows may have different
// lengths; the grid mirrors its input.
type TableGrid [][]string

// Columns returns the length of the longest row.
func (g TableGrid) Columns() int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// IsTableRow reports whether a line belongs to a pipe table.
// Any line containing a pipe qualifies, prose included.
func IsTableRow(line string) bool {
	return strings.Contains(line, cellSeparator)
}

// SplitRow splits a table line on pipes, trims each cell and drops the
// empty ones, so leading and trailing pipes are optional.
func SplitRow(line string) []string {
	parts := strings.Split(line, cellSeparator)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// tableBuilder accumulates consecutive table lines.
// A table is open as soon as one pipe line is seen, even if that line
// produced no cells.
type tableBuilder struct {
	rows TableGrid
	open bool
}

// add appends the cells of line as a new row. Rows without cells are skipped
// but still keep the table open.
func (t *tableBuilder) add(line string) {
	t.open = true
	if cells := SplitRow(line); len(cells) > 0 {
		t.rows = append(t.rows, cells)
	}
}

// flush appends the accumulated table to out, if it has rows, and resets.
func (t *tableBuilder) flush(out []Block) []Block {
	if t.open && len(t.rows) > 0 {
		out = append(out, Table(t.rows))
	}
	t.rows = nil
	t.open = false
	return out
}
