// Package core implements the Puyo Puyo engine: grid storage, the piece
// queue, the falling piece controller, locking and gravity, chain resolution
// and the session state machine that ties them together.
// This package is UI-agnostic and deterministic for a given seed.
package core

import "fmt"

// Pos is a cell position on the grid. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Pos offset by (dRow, dCol).
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Orientation is the rotational state of a piece. It determines where the
// second cell sits relative to the pivot.
type Orientation uint8

const (
	OrientUp Orientation = iota
	OrientRight
	OrientDown
	OrientLeft
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o % 4 {
	case OrientUp:
		return "up"
	case OrientRight:
		return "right"
	case OrientDown:
		return "down"
	default:
		return "left"
	}
}

// Offset returns the (dRow, dCol) of the second cell relative to the pivot.
func (o Orientation) Offset() (dRow, dCol int) {
	switch o % 4 {
	case OrientUp:
		return -1, 0
	case OrientRight:
		return 0, 1
	case OrientDown:
		return 1, 0
	default:
		return 0, -1
	}
}

// Rotate returns the orientation after turning 90 degrees in the given direction.
func (o Orientation) Rotate(r Rotation) Orientation {
	return Orientation((int(o%4) + int(r) + 4) % 4)
}

// Rotation is a rotation direction.
type Rotation int

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// Phase is the engine's state machine state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseFalling
	PhaseResolving
	PhaseGameOver
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFalling:
		return "falling"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
