package core

import (
	"fmt"
	"strings"
)

// Grid is the fixed-size board. Cells are stored in row-major order:
// index = row*cols + col. Row 0 is the top of the board.
type Grid struct {
	rows  int
	cols  int
	cells []Color
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Color, rows*cols),
	}
}

// ParseGrid builds a grid from one string per row using Color.Char codes,
// e.g. "..RR.." for a 6-wide row. All lines must have the same length.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	cols := len(lines[0])
	g := NewGrid(len(lines), cols)
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("parse grid: row %d has width %d, want %d", row, len(line), cols)
		}
		for col, ch := range line {
			c, ok := ParseColor(string(ch))
			if !ok {
				return nil, fmt.Errorf("parse grid: unknown cell %q at %v", ch, P(row, col))
			}
			g.Set(row, col, c)
		}
	}
	return g, nil
}

// Rows returns the number of rows, including any hidden rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a position to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the cell color at the given position.
// Returns Empty if out of bounds.
func (g *Grid) Get(row, col int) Color {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[g.index(row, col)]
}

// Set writes a cell. Out-of-bounds writes are silently ignored.
func (g *Grid) Set(row, col int, c Color) {
	if g.InBounds(row, col) {
		g.cells[g.index(row, col)] = c
	}
}

// IsEmpty returns true if the position is in bounds and holds no color.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.InBounds(row, col) && g.Get(row, col) == Empty
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, c := range g.cells {
		if c != Empty {
			count++
		}
	}
	return count
}

// RowOccupied returns true if any cell in the row holds a color.
func (g *Grid) RowOccupied(row int) bool {
	for col := 0; col < g.cols; col++ {
		if g.Get(row, col) != Empty {
			return true
		}
	}
	return false
}

// String renders the grid one line per row using Color.Char.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.Get(row, col).Char())
		}
	}
	return sb.String()
}
