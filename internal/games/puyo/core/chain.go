package core

import "github.com/kamstrup/intmap"

// Group is a 4-connected component of same-colored cells.
type Group struct {
	Color Color
	Cells []Pos
}

// Size returns the number of cells in the group.
func (gr Group) Size() int {
	return len(gr.Cells)
}

// neighbors are the four orthogonal directions used by the flood fill.
var neighbors = [4]Pos{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// FindGroups flood-fills the grid in row-major order and returns every
// connected component with at least minSize cells.
func FindGroups(g *Grid, minSize int) []Group {
	visited := intmap.New[int, struct{}](g.Rows() * g.Cols())
	var groups []Group

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			color := g.Get(row, col)
			if color == Empty {
				continue
			}
			if _, seen := visited.Get(g.index(row, col)); seen {
				continue
			}

			group := floodFill(g, P(row, col), visited)
			if group.Size() >= minSize {
				groups = append(groups, group)
			}
		}
	}
	return groups
}

// floodFill collects the component containing start with a breadth-first
// search, marking every reached cell as visited.
func floodFill(g *Grid, start Pos, visited *intmap.Map[int, struct{}]) Group {
	color := g.Get(start.Row, start.Col)
	group := Group{Color: color, Cells: []Pos{start}}
	visited.Put(g.index(start.Row, start.Col), struct{}{})

	for head := 0; head < len(group.Cells); head++ {
		cur := group.Cells[head]
		for _, d := range neighbors {
			next := cur.Add(d.Row, d.Col)
			if !g.InBounds(next.Row, next.Col) || g.Get(next.Row, next.Col) != color {
				continue
			}
			idx := g.index(next.Row, next.Col)
			if _, seen := visited.Get(idx); seen {
				continue
			}
			visited.Put(idx, struct{}{})
			group.Cells = append(group.Cells, next)
		}
	}
	return group
}

// ChainStep records one pass of detection, removal and compaction.
type ChainStep struct {
	Step    int     // 1-based chain step number
	Groups  []Group // Groups removed in this step
	Removed int     // Total cells removed
	Score   int     // Removed * CellValue * Step
}

// ChainResult is the outcome of resolving a settled grid.
type ChainResult struct {
	Steps []ChainStep
	Score int
}

// Chains returns the number of chain steps executed.
func (r ChainResult) Chains() int {
	return len(r.Steps)
}

// Removed returns the total number of cells removed across all steps.
func (r ChainResult) Removed() int {
	n := 0
	for _, s := range r.Steps {
		n += s.Removed
	}
	return n
}

// Resolver finds and clears groups and scores each chain step.
type Resolver struct {
	MinGroup  int // Smallest group that is removed
	CellValue int // Points per removed cell, multiplied by the step number
}

// DefaultResolver returns the classic rules: groups of 4, 10 points per cell.
func DefaultResolver() Resolver {
	return Resolver{MinGroup: 4, CellValue: 10}
}

// StepScore returns the score for removing k cells at chain step n.
func (r Resolver) StepScore(k, n int) int {
	return k * r.CellValue * n
}

// remove clears every cell of the given groups and returns the count.
func remove(g *Grid, groups []Group) int {
	removed := 0
	for _, gr := range groups {
		for _, pos := range gr.Cells {
			if g.Get(pos.Row, pos.Col) != Empty {
				g.Set(pos.Row, pos.Col, Empty)
				removed++
			}
		}
	}
	return removed
}

// Step runs chain step n on a settled grid: detect groups, clear them and
// compact the columns. Returns false and leaves the grid untouched when no
// group qualifies.
func (r Resolver) Step(g *Grid, n int) (ChainStep, bool) {
	groups := FindGroups(g, r.MinGroup)
	if len(groups) == 0 {
		return ChainStep{}, false
	}

	removed := remove(g, groups)
	Compact(g)

	return ChainStep{
		Step:    n,
		Groups:  groups,
		Removed: removed,
		Score:   r.StepScore(removed, n),
	}, true
}

// Resolve runs chain steps until the grid holds no qualifying group.
func (r Resolver) Resolve(g *Grid) ChainResult {
	var result ChainResult
	for n := 1; ; n++ {
		step, ok := r.Step(g, n)
		if !ok {
			return result
		}
		result.Steps = append(result.Steps, step)
		result.Score += step.Score
	}
}
