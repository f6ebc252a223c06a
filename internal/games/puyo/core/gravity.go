package core

// Lock writes the piece into the grid and settles it. Cells outside the
// grid, such as a child still above the top row, are dropped.
// Returns the number of settle passes that moved something.
func Lock(g *Grid, p Piece) int {
	place(g, p)
	return Settle(g)
}

// place writes the in-bounds cells of p without settling.
func place(g *Grid, p Piece) {
	for _, pos := range p.Cells() {
		c, _ := p.Covers(pos)
		g.Set(pos.Row, pos.Col, c)
	}
}

// SettlePass scans every column bottom-to-top once and moves each occupied
// cell with an empty cell directly below it down by one row.
// Returns true if anything moved.
func SettlePass(g *Grid) bool {
	moved := false
	for col := 0; col < g.Cols(); col++ {
		for row := g.Rows() - 2; row >= 0; row-- {
			c := g.Get(row, col)
			if c == Empty || g.Get(row+1, col) != Empty {
				continue
			}
			g.Set(row+1, col, c)
			g.Set(row, col, Empty)
			moved = true
		}
	}
	return moved
}

// Settle repeats SettlePass until a pass moves nothing. Each cell falls
// independently, so a horizontally locked piece over uneven ground splits.
// Returns the number of passes that moved something.
func Settle(g *Grid) int {
	passes := 0
	for SettlePass(g) {
		passes++
	}
	return passes
}

// Compact drops every column to the floor in a single pass per column,
// preserving the vertical order of cells. The result equals Settle.
func Compact(g *Grid) {
	for col := 0; col < g.Cols(); col++ {
		write := g.Rows() - 1
		for row := g.Rows() - 1; row >= 0; row-- {
			c := g.Get(row, col)
			if c == Empty {
				continue
			}
			if write != row {
				g.Set(write, col, c)
				g.Set(row, col, Empty)
			}
			write--
		}
	}
}

// IsSettled reports whether every occupied cell rests on the floor or on
// another occupied cell.
func IsSettled(g *Grid) bool {
	for col := 0; col < g.Cols(); col++ {
		for row := 0; row < g.Rows()-1; row++ {
			if g.Get(row, col) != Empty && g.Get(row+1, col) == Empty {
				return false
			}
		}
	}
	return true
}
