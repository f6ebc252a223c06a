package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid parses a grid or fails the test.
func mustGrid(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(lines...)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(13, 6)

	assert.Equal(t, 13, g.Rows())
	assert.Equal(t, 6, g.Cols())
	assert.Equal(t, 0, g.FilledCount())
	assert.True(t, g.IsEmpty(0, 0))
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(4, 3)

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{3, 2, true},
		{1, 1, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.InBounds(tt.row, tt.col), "InBounds(%d, %d)", tt.row, tt.col)
	}
}

func TestGridSetAndGet(t *testing.T) {
	g := NewGrid(3, 3)

	g.Set(1, 2, ColorBlue)
	assert.Equal(t, ColorBlue, g.Get(1, 2))
	assert.False(t, g.IsEmpty(1, 2))
	assert.Equal(t, 1, g.FilledCount())

	g.Set(1, 2, Empty)
	assert.True(t, g.IsEmpty(1, 2))
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)

	// Writes outside the grid are dropped, reads return empty.
	g.Set(-1, 0, ColorRed)
	g.Set(0, 3, ColorRed)
	assert.Equal(t, 0, g.FilledCount())
	assert.Equal(t, Empty, g.Get(-1, 0))
	assert.False(t, g.IsEmpty(-1, 0), "out-of-bounds cells are never free")
}

func TestParseGrid(t *testing.T) {
	lines := []string{
		"......",
		"..RG..",
		"BYPRGB",
	}
	g := mustGrid(t, lines...)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 6, g.Cols())
	assert.Equal(t, ColorRed, g.Get(1, 2))
	assert.Equal(t, ColorPurple, g.Get(2, 2))
	assert.Equal(t, strings.Join(lines, "\n"), g.String())
}

func TestParseGridErrors(t *testing.T) {
	_, err := ParseGrid()
	assert.Error(t, err)

	_, err = ParseGrid("...", "..")
	assert.Error(t, err)

	_, err = ParseGrid("..X")
	assert.Error(t, err)
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, "R..", "GG.")
	clone := g.Clone()

	require.True(t, g.Equal(clone))

	clone.Set(0, 0, Empty)
	assert.Equal(t, ColorRed, g.Get(0, 0))
	assert.False(t, g.Equal(clone))
}

func TestRowOccupied(t *testing.T) {
	g := mustGrid(t, "...", ".Y.", "...")

	assert.False(t, g.RowOccupied(0))
	assert.True(t, g.RowOccupied(1))
	assert.False(t, g.RowOccupied(5))
}

func TestColorParseAndChar(t *testing.T) {
	for _, c := range AllColors() {
		parsed, ok := ParseColor(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, parsed)

		fromChar, ok := ParseColor(string(c.Char()))
		require.True(t, ok)
		assert.Equal(t, c, fromChar)
	}

	_, ok := ParseColor("orange")
	assert.False(t, ok)
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette(3), 3)
	assert.Len(t, Palette(0), 1)
	assert.Len(t, Palette(99), MaxColors)
	assert.Equal(t, 5, MaxColors)
}
