package core

// Cascade resolves a grid in small stages so a renderer can show cells
// falling and groups popping frame by frame. Each stage is either one
// SettlePass or one detect-and-clear step. Running a cascade to completion
// yields the same grid and score as Settle followed by Resolver.Resolve.
type Cascade struct {
	grid     *Grid
	resolver Resolver
	result   ChainResult
	removing []Group
	settled  bool
	done     bool
}

// NewCascade starts a staged resolution of g. The grid may still contain
// floating cells, for example right after a piece is written.
func NewCascade(g *Grid, r Resolver) *Cascade {
	return &Cascade{
		grid:     g,
		resolver: r,
	}
}

// Advance performs one stage. Returns false once there is nothing left to do.
func (c *Cascade) Advance() bool {
	if c.done {
		return false
	}
	c.removing = nil

	if !c.settled {
		if SettlePass(c.grid) {
			return true
		}
		c.settled = true
	}

	groups := FindGroups(c.grid, c.resolver.MinGroup)
	if len(groups) == 0 {
		c.done = true
		return false
	}

	n := len(c.result.Steps) + 1
	removed := remove(c.grid, groups)
	step := ChainStep{
		Step:    n,
		Groups:  groups,
		Removed: removed,
		Score:   c.resolver.StepScore(removed, n),
	}
	c.result.Steps = append(c.result.Steps, step)
	c.result.Score += step.Score
	c.removing = groups
	c.settled = false
	return true
}

// Run advances until the cascade is finished and returns the result.
func (c *Cascade) Run() ChainResult {
	for c.Advance() {
	}
	return c.result
}

// Done reports whether the cascade has finished.
func (c *Cascade) Done() bool {
	return c.done
}

// Result returns the steps completed so far.
func (c *Cascade) Result() ChainResult {
	return c.result
}

// Removing returns the groups cleared by the most recent stage, if any.
func (c *Cascade) Removing() []Group {
	return c.removing
}
