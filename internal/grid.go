package internal

import "strings"

// Grid is a headerless rectangular view of worksheet cells, row 0 being the
// first physical row. Rows may be ragged (shorter than the widest row), as
// excelize's GetRows returns them; Cell treats missing positions as empty.
type Grid [][]string

// NumRows returns the number of rows in the grid.
func (g Grid) NumRows() int {
	return len(g)
}

// Cell returns the value at (row, col), or "" when the position is outside
// the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Row returns the raw row slice, or nil when out of range.
func (g Grid) Row(row int) []string {
	if row < 0 || row >= len(g) {
		return nil
	}
	return g[row]
}

// IsBlankRow reports whether every cell in the row is empty or whitespace.
// Out-of-range rows are blank.
func (g Grid) IsBlankRow(row int) bool {
	for _, cell := range g.Row(row) {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// FirstColContains returns the indices of rows whose first-column text
// contains the given substring. Used to find block-delimiter marker rows.
func (g Grid) FirstColContains(substr string) []int {
	var rows []int
	for r := range g {
		if strings.Contains(g.Cell(r, 0), substr) {
			rows = append(rows, r)
		}
	}
	return rows
}

// Slice returns the sub-grid covering rows [start, end). Bounds are clamped
// to the grid; an empty range yields an empty grid.
func (g Grid) Slice(start, end int) Grid {
	if start < 0 {
		start = 0
	}
	if end > len(g) {
		end = len(g)
	}
	if start >= end {
		return nil
	}
	return g[start:end]
}
