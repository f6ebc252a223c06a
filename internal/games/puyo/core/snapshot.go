package core

// Snapshot is an immutable copy of the session state, used by renderers
// and determinism tests.
type Snapshot struct {
	Phase     Phase
	Grid      *Grid // Deep copy; safe to keep
	Active    Piece
	HasActive bool
	Next      Pair
	HasNext   bool
	Score     int
	Chains    int
	MaxChain  int
	Pieces    int
	Running   bool
	GameOver  bool
}

// Snapshot captures the current session state.
func (e *Engine) Snapshot() Snapshot {
	active, hasActive := e.ctrl.Active()
	next, hasNext := e.queue.Peek()
	return Snapshot{
		Phase:     e.phase,
		Grid:      e.grid.Clone(),
		Active:    active,
		HasActive: hasActive,
		Next:      next,
		HasNext:   hasNext,
		Score:     e.score,
		Chains:    e.chains,
		MaxChain:  e.maxChain,
		Pieces:    e.pieces,
		Running:   e.running,
		GameOver:  e.phase == PhaseGameOver,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Phase == other.Phase &&
		s.Grid.Equal(other.Grid) &&
		s.Active == other.Active &&
		s.HasActive == other.HasActive &&
		s.Next == other.Next &&
		s.HasNext == other.HasNext &&
		s.Score == other.Score &&
		s.Chains == other.Chains &&
		s.MaxChain == other.MaxChain &&
		s.Pieces == other.Pieces &&
		s.Running == other.Running &&
		s.GameOver == other.GameOver
}
