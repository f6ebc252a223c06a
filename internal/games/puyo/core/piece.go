package core

// Piece is the falling two-cell piece.
type Piece struct {
	Pivot  Pos
	Orient Orientation
	Pair   Pair
}

// Child returns the position of the second cell.
func (p Piece) Child() Pos {
	return childOf(p.Pivot, p.Orient)
}

// Cells returns the pivot and child positions in that order.
func (p Piece) Cells() [2]Pos {
	return [2]Pos{p.Pivot, p.Child()}
}

// Covers returns the color the piece shows at pos, if any.
func (p Piece) Covers(pos Pos) (Color, bool) {
	switch pos {
	case p.Pivot:
		return p.Pair.First, true
	case p.Child():
		return p.Pair.Second, true
	}
	return Empty, false
}

func childOf(pivot Pos, o Orientation) Pos {
	dRow, dCol := o.Offset()
	return pivot.Add(dRow, dCol)
}

// kicks are the pivot shifts tried in order when rotating:
// in place, left, right, up.
var kicks = [4]Pos{
	{Row: 0, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
}

// Controller owns the active piece and moves it against the grid.
type Controller struct {
	grid   *Grid
	spawn  Pos
	piece  Piece
	active bool
}

// NewController creates a controller spawning pieces at the given pivot.
func NewController(grid *Grid, spawn Pos) *Controller {
	return &Controller{
		grid:  grid,
		spawn: spawn,
	}
}

// SpawnPos returns the pivot position new pieces start at.
func (c *Controller) SpawnPos() Pos {
	return c.spawn
}

// Spawn places a new piece at the spawn pivot pointing down.
// Occupied spawn cells are not checked here.
func (c *Controller) Spawn(pair Pair) Piece {
	c.piece = Piece{
		Pivot:  c.spawn,
		Orient: OrientDown,
		Pair:   pair,
	}
	c.active = true
	return c.piece
}

// Active returns the falling piece, if any.
func (c *Controller) Active() (Piece, bool) {
	return c.piece, c.active
}

// Take removes and returns the falling piece so it can be locked.
func (c *Controller) Take() (Piece, bool) {
	if !c.active {
		return Piece{}, false
	}
	p := c.piece
	c.Clear()
	return p, true
}

// Clear discards the falling piece.
func (c *Controller) Clear() {
	c.piece = Piece{}
	c.active = false
}

// fits reports whether a piece with this pivot and orientation has both
// cells in bounds and empty.
func (c *Controller) fits(pivot Pos, o Orientation) bool {
	child := childOf(pivot, o)
	return c.grid.IsEmpty(pivot.Row, pivot.Col) && c.grid.IsEmpty(child.Row, child.Col)
}

// Blocked reports whether the active piece overlaps occupied cells,
// which can only happen right after spawn.
func (c *Controller) Blocked() bool {
	if !c.active {
		return false
	}
	return !c.fits(c.piece.Pivot, c.piece.Orient)
}

// TryMove shifts the piece keeping its orientation.
func (c *Controller) TryMove(dRow, dCol int) bool {
	return c.TryMoveTo(dRow, dCol, c.piece.Orient)
}

// TryMoveTo shifts the pivot and sets the orientation in one step.
// Nothing changes if either resulting cell is out of bounds or occupied.
func (c *Controller) TryMoveTo(dRow, dCol int, o Orientation) bool {
	if !c.active {
		return false
	}
	pivot := c.piece.Pivot.Add(dRow, dCol)
	if !c.fits(pivot, o) {
		return false
	}
	c.piece.Pivot = pivot
	c.piece.Orient = o
	return true
}

// TryRotate turns the piece 90 degrees, trying each kick in order.
func (c *Controller) TryRotate(r Rotation) bool {
	if !c.active {
		return false
	}
	o := c.piece.Orient.Rotate(r)
	for _, k := range kicks {
		pivot := c.piece.Pivot.Add(k.Row, k.Col)
		if c.fits(pivot, o) {
			c.piece.Pivot = pivot
			c.piece.Orient = o
			return true
		}
	}
	return false
}
