package core

import (
	"fmt"
	"math/rand"
)

// Engine is one Puyo Puyo session. It owns the grid, the piece queue, the
// falling piece and the score, and advances only in response to commands.
// An Engine is not safe for concurrent use; callers serialize ticks and
// input onto one goroutine.
type Engine struct {
	opts     Options
	rng      *rand.Rand
	grid     *Grid
	queue    *Queue
	ctrl     *Controller
	resolver Resolver

	// Progressive resolution state
	cascade *Cascade
	scored  int // Cascade steps already added to score

	phase     Phase
	score     int
	chains    int
	maxChain  int
	pieces    int
	running   bool
	lastChain ChainResult
}

// New creates an engine in the idle phase. Call SpawnNext to drop the
// first piece.
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grid := NewGrid(opts.Rows, opts.Cols)
	e := &Engine{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		grid: grid,
		ctrl: NewController(grid, opts.SpawnPos()),
		resolver: Resolver{
			MinGroup:  opts.MinGroup,
			CellValue: opts.CellValue,
		},
	}
	e.NewGame()
	return e, nil
}

// NewGame resets the grid, score, counters and queue and returns to idle.
// The RNG stream continues, so consecutive games get different pieces.
func (e *Engine) NewGame() {
	e.grid.Clear()
	e.ctrl.Clear()
	e.queue = NewQueue(NewGenerator(e.rng, Palette(e.opts.Colors)), e.opts.QueueLowWater, e.opts.QueueBatch)
	e.cascade = nil
	e.scored = 0
	e.phase = PhaseIdle
	e.score = 0
	e.chains = 0
	e.maxChain = 0
	e.pieces = 0
	e.running = true
	e.lastChain = ChainResult{}
}

// SetGrid replaces the board contents, e.g. to start from a prepared
// position. Not allowed while a cascade is in progress.
func (e *Engine) SetGrid(g *Grid) error {
	if g.Rows() != e.grid.Rows() || g.Cols() != e.grid.Cols() {
		return fmt.Errorf("set grid: size %dx%d does not match %dx%d", g.Rows(), g.Cols(), e.grid.Rows(), e.grid.Cols())
	}
	if e.phase == PhaseResolving {
		return fmt.Errorf("set grid: cascade in progress")
	}
	copy(e.grid.cells, g.cells)
	return nil
}

// SpawnNext takes the next pair from the queue and spawns it.
// Only valid in the idle phase.
func (e *Engine) SpawnNext() bool {
	if e.phase != PhaseIdle {
		return false
	}

	e.ctrl.Spawn(e.queue.Next())
	e.pieces++

	if e.opts.SpawnCollision == SpawnGameOver && e.ctrl.Blocked() {
		e.ctrl.Clear()
		e.endGame()
		return true
	}

	e.phase = PhaseFalling
	return true
}

// canControl reports whether piece commands are accepted.
func (e *Engine) canControl() bool {
	return e.phase == PhaseFalling && e.running
}

// MoveLeft shifts the piece one column left.
func (e *Engine) MoveLeft() bool {
	return e.canControl() && e.ctrl.TryMove(0, -1)
}

// MoveRight shifts the piece one column right.
func (e *Engine) MoveRight() bool {
	return e.canControl() && e.ctrl.TryMove(0, 1)
}

// SoftDrop moves the piece down one row. It never locks the piece.
func (e *Engine) SoftDrop() bool {
	return e.canControl() && e.ctrl.TryMove(1, 0)
}

// RotateCW rotates the piece clockwise with kicks.
func (e *Engine) RotateCW() bool {
	return e.canControl() && e.ctrl.TryRotate(Clockwise)
}

// RotateCCW rotates the piece counter-clockwise with kicks.
func (e *Engine) RotateCCW() bool {
	return e.canControl() && e.ctrl.TryRotate(CounterClockwise)
}

// HardDrop moves the piece down until it lands, then locks it.
func (e *Engine) HardDrop() bool {
	if !e.canControl() {
		return false
	}
	for e.ctrl.TryMove(1, 0) {
	}
	e.lockPiece()
	return true
}

// Tick is the periodic gravity step: move the piece down one row, or lock
// it if it cannot move.
func (e *Engine) Tick() bool {
	if !e.canControl() {
		return false
	}
	if e.ctrl.TryMove(1, 0) {
		return true
	}
	e.lockPiece()
	return true
}

// lockPiece merges the falling piece into the grid and resolves chains,
// either right away or staged through Advance.
func (e *Engine) lockPiece() {
	p, ok := e.ctrl.Take()
	if !ok {
		return
	}
	e.phase = PhaseResolving

	if e.opts.Progressive {
		place(e.grid, p)
		e.cascade = NewCascade(e.grid, e.resolver)
		e.scored = 0
		return
	}

	Lock(e.grid, p)
	result := e.resolver.Resolve(e.grid)
	e.score += result.Score
	e.finishResolve(result)
}

// Advance runs one stage of a progressive cascade. Returns false when there
// is no cascade in progress.
func (e *Engine) Advance() bool {
	if e.phase != PhaseResolving || e.cascade == nil {
		return false
	}

	more := e.cascade.Advance()
	result := e.cascade.Result()
	for ; e.scored < len(result.Steps); e.scored++ {
		e.score += result.Steps[e.scored].Score
	}

	if !more {
		e.cascade = nil
		e.finishResolve(result)
	}
	return true
}

// finishResolve updates the chain counters, checks for game over and
// spawns the next piece.
func (e *Engine) finishResolve(result ChainResult) {
	e.lastChain = result
	if n := result.Chains(); n > 0 {
		e.chains++
		if n > e.maxChain {
			e.maxChain = n
		}
	}

	if e.grid.RowOccupied(e.opts.HiddenRows) {
		e.endGame()
		return
	}

	e.phase = PhaseIdle
	e.SpawnNext()
}

// endGame enters the terminal phase and stops tick dispatch.
func (e *Engine) endGame() {
	e.phase = PhaseGameOver
	e.running = false
}

// Pause stops tick dispatch and piece control without touching the board.
func (e *Engine) Pause() bool {
	if e.phase == PhaseGameOver || !e.running {
		return false
	}
	e.running = false
	return true
}

// Resume restarts tick dispatch after Pause.
func (e *Engine) Resume() bool {
	if e.phase == PhaseGameOver || e.running {
		return false
	}
	e.running = true
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() bool {
	if e.running {
		return e.Pause()
	}
	return e.Resume()
}

// Grid returns a copy of the board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// Active returns the falling piece, if any.
func (e *Engine) Active() (Piece, bool) {
	return e.ctrl.Active()
}

// Next returns the pair that will spawn after the current piece.
func (e *Engine) Next() (Pair, bool) {
	return e.queue.Peek()
}

// Upcoming returns the next n queued pairs.
func (e *Engine) Upcoming(n int) []Pair {
	return e.queue.Upcoming(n)
}

// Removing returns the groups cleared by the latest cascade stage.
func (e *Engine) Removing() []Group {
	if e.cascade == nil {
		return nil
	}
	return e.cascade.Removing()
}

// Options returns the options the engine was created with.
func (e *Engine) Options() Options {
	return e.opts
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the session score.
func (e *Engine) Score() int {
	return e.score
}

// Chains returns the number of resolve cycles that removed at least one group.
func (e *Engine) Chains() int {
	return e.chains
}

// MaxChain returns the longest cascade of the session.
func (e *Engine) MaxChain() int {
	return e.maxChain
}

// Pieces returns the number of pieces spawned this game.
func (e *Engine) Pieces() int {
	return e.pieces
}

// Running reports whether ticks are being dispatched.
func (e *Engine) Running() bool {
	return e.running
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.phase == PhaseGameOver
}

// LastChain returns the result of the most recent resolve cycle.
func (e *Engine) LastChain() ChainResult {
	return e.lastChain
}
