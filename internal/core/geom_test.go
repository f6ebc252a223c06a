package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 15, cx)
	assert.Equal(t, 17, cy)
}

func TestClampMinMax(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, 5, Min(5, 10))
	assert.Equal(t, 10, Max(5, 10))
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionHardDrop)

	assert.True(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionRight))

	clone := f.Clone()
	f.Clear()
	assert.False(t, f.Has(ActionLeft))
	assert.True(t, clone.Has(ActionHardDrop))

	var zero InputFrame
	assert.False(t, zero.Has(ActionPause))
	zero.Set(ActionPause)
	assert.True(t, zero.Has(ActionPause))

	assert.Equal(t, "RotateCCW", ActionRotateCCW.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
