package cli

import (
	"strings"
	"unicode/utf8"
)

// Table is a simple text table with dynamic column widths. Cell widths are
// measured on the visible text, so cells may contain ANSI colour sequences
// (swatches) without breaking the alignment.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2, // 2 spaces between columns
		rightAlign: make(map[int]bool),
	}
}

// SetRightAlign right-aligns the given column. Columns are left-aligned by
// default.
func (t *Table) SetRightAlign(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row to the table. Rows shorter than the header count are
// padded with empty cells; longer rows are truncated.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := visibleLen(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = t.pad(h, colWidths[i], i)
	}
	result.WriteString(strings.Join(parts, gap))
	result.WriteString("\n")

	for i, w := range colWidths {
		parts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(parts, gap))
	result.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			parts[i] = t.pad(cell, colWidths[i], i)
		}
		result.WriteString(strings.Join(parts, gap))
		result.WriteString("\n")
	}

	return result.String()
}

// pad pads a cell with spaces to the column width, respecting the column's
// alignment. Width is measured on the visible text.
func (t *Table) pad(s string, width, colIndex int) string {
	gap := width - visibleLen(s)
	if gap <= 0 {
		return s
	}
	if t.rightAlign[colIndex] {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// visibleLen returns the display width of a string with ANSI escape
// sequences stripped. Assumes the remaining text is single-width runes.
func visibleLen(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			// Skip the CSI sequence: parameters, then one final byte in
			// [0x40, 0x7e].
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			if i < len(s) {
				i++
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		n++
		i += size
	}
	return n
}
