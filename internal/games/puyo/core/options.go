package core

import (
	"errors"
	"fmt"
)

// SpawnCollision selects what happens when a piece spawns onto occupied cells.
type SpawnCollision string

const (
	// SpawnOverlap places the piece anyway; the game ends only if the
	// topmost visible row is occupied once the piece locks and resolves.
	SpawnOverlap SpawnCollision = "overlap"
	// SpawnGameOver ends the game as soon as a spawn overlaps the stack.
	SpawnGameOver SpawnCollision = "game_over"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid engine options")

// Options configures an Engine.
type Options struct {
	Rows       int // Total rows including the hidden band
	Cols       int
	HiddenRows int // Rows above the visible play area
	SpawnRow   int // Pivot row for new pieces

	Colors    int // Number of piece colors, 1..MaxColors
	MinGroup  int // Smallest group that is removed
	CellValue int // Points per removed cell per chain step

	QueueLowWater int // Refill threshold for the piece queue
	QueueBatch    int // Pairs appended per refill

	SpawnCollision SpawnCollision
	Progressive    bool  // Resolve through Advance instead of synchronously
	Seed           int64 // RNG seed for the piece queue
}

// DefaultOptions returns the classic 13x6 board with one hidden row.
func DefaultOptions() Options {
	return Options{
		Rows:           13,
		Cols:           6,
		HiddenRows:     1,
		SpawnRow:       0,
		Colors:         5,
		MinGroup:       4,
		CellValue:      10,
		QueueLowWater:  10,
		QueueBatch:     100,
		SpawnCollision: SpawnOverlap,
	}
}

// SpawnPos returns the pivot position new pieces start at:
// the spawn row, horizontally centered.
func (o Options) SpawnPos() Pos {
	return P(o.SpawnRow, (o.Cols-1)/2)
}

// VisibleRows returns the number of rows below the hidden band.
func (o Options) VisibleRows() int {
	return o.Rows - o.HiddenRows
}

// Validate checks that the options describe a playable board.
func (o Options) Validate() error {
	var errs []error
	if o.Cols < 2 {
		errs = append(errs, fmt.Errorf("cols must be at least 2, got %d", o.Cols))
	}
	if o.HiddenRows < 0 {
		errs = append(errs, fmt.Errorf("hidden rows must not be negative, got %d", o.HiddenRows))
	}
	if o.Rows < o.HiddenRows+2 {
		errs = append(errs, fmt.Errorf("rows must leave at least 2 visible rows, got %d with %d hidden", o.Rows, o.HiddenRows))
	}
	if o.SpawnRow < 0 || o.SpawnRow > o.Rows-2 {
		errs = append(errs, fmt.Errorf("spawn row %d leaves no room for the piece", o.SpawnRow))
	}
	if o.Colors < 1 || o.Colors > MaxColors {
		errs = append(errs, fmt.Errorf("colors must be in [1, %d], got %d", MaxColors, o.Colors))
	}
	if o.MinGroup < 2 {
		errs = append(errs, fmt.Errorf("min group must be at least 2, got %d", o.MinGroup))
	}
	if o.CellValue < 0 {
		errs = append(errs, fmt.Errorf("cell value must not be negative, got %d", o.CellValue))
	}
	if o.QueueLowWater < 1 || o.QueueBatch < 1 {
		errs = append(errs, fmt.Errorf("queue low water and batch must be positive, got %d and %d", o.QueueLowWater, o.QueueBatch))
	}
	switch o.SpawnCollision {
	case SpawnOverlap, SpawnGameOver:
	default:
		errs = append(errs, fmt.Errorf("unknown spawn collision policy %q", o.SpawnCollision))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}
	return nil
}
