package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchColorBalance(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)), AllColors())

	pairs := gen.Batch(5)
	require.Len(t, pairs, 5)

	counts := make(map[Color]int)
	for _, p := range pairs {
		counts[p.First]++
		counts[p.Second]++
	}

	assert.Len(t, counts, 5)
	for _, c := range AllColors() {
		assert.Equal(t, 2, counts[c], "color %s", c)
	}
}

func TestBatchLargeIsBalanced(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(99)), AllColors())

	counts := make(map[Color]int)
	for _, p := range gen.Batch(100) {
		counts[p.First]++
		counts[p.Second]++
	}

	for _, c := range AllColors() {
		assert.Equal(t, 40, counts[c], "color %s", c)
	}
}

func TestBatchDeterministic(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(12345)), AllColors()).Batch(50)
	b := NewGenerator(rand.New(rand.NewSource(12345)), AllColors()).Batch(50)

	assert.Equal(t, a, b)
}

func TestBatchShuffles(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)), AllColors())
	pairs := gen.Batch(50)

	// Without shuffling the first pair would always be red/green.
	unshuffled := 0
	for i, p := range pairs {
		if p.First == AllColors()[(2*i)%5] && p.Second == AllColors()[(2*i+1)%5] {
			unshuffled++
		}
	}
	assert.Less(t, unshuffled, len(pairs))
}

func TestBatchEmpty(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)), nil)
	assert.Nil(t, gen.Batch(0))
	assert.Len(t, gen.Batch(1), 1)
}

func TestQueueNeverRunsLow(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(42)), AllColors())
	q := NewQueue(gen, 10, 100)

	assert.Equal(t, 100, q.Len())

	for i := 0; i < 500; i++ {
		q.Next()
		require.GreaterOrEqual(t, q.Len(), 10, "after %d dequeues", i+1)
		_, ok := q.Peek()
		require.True(t, ok)
	}
}

func TestQueueIsFIFO(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(5)), AllColors())
	q := NewQueue(gen, 10, 20)

	// Crossing a refill must not reorder pairs already queued.
	for i := 0; i < 9; i++ {
		q.Next()
	}
	upcoming := q.Upcoming(15)
	require.Len(t, upcoming, 11, "only 11 queued before the refill")

	for i, want := range upcoming {
		assert.Equal(t, want, q.Next(), "pair %d", i)
	}
}
