package core

import "math/rand"

// Generator produces color-balanced batches of pairs.
type Generator struct {
	rng    *rand.Rand
	colors []Color
}

// NewGenerator creates a generator drawing from the given colors.
// An empty color list falls back to the full palette.
func NewGenerator(rng *rand.Rand, colors []Color) *Generator {
	if len(colors) == 0 {
		colors = AllColors()
	}
	return &Generator{
		rng:    rng,
		colors: colors,
	}
}

// Batch returns n pairs built from 2n singles. The singles are assigned
// colors cyclically, so every color appears equally often when 2n is a
// multiple of the palette size, then shuffled with Fisher-Yates and paired
// in order.
func (g *Generator) Batch(n int) []Pair {
	if n <= 0 {
		return nil
	}

	singles := make([]Color, n*2)
	for i := range singles {
		singles[i] = g.colors[i%len(g.colors)]
	}

	for i := len(singles) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		singles[i], singles[j] = singles[j], singles[i]
	}

	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{First: singles[2*i], Second: singles[2*i+1]}
	}
	return pairs
}

// Queue is the FIFO of upcoming pairs. It tops itself up in bulk whenever
// it runs low, so callers never observe it empty.
type Queue struct {
	gen      *Generator
	pairs    []Pair
	lowWater int
	batch    int
}

// NewQueue creates a queue pre-filled with one batch.
func NewQueue(gen *Generator, lowWater, batch int) *Queue {
	if batch <= 0 {
		batch = 100
	}
	if lowWater < 1 {
		lowWater = 1
	}
	q := &Queue{
		gen:      gen,
		lowWater: lowWater,
		batch:    batch,
	}
	q.topUp()
	return q
}

// topUp appends a fresh batch while the queue is below its low-water mark.
func (q *Queue) topUp() {
	for len(q.pairs) < q.lowWater {
		q.pairs = append(q.pairs, q.gen.Batch(q.batch)...)
	}
}

// Next removes and returns the head of the queue, refilling if needed.
func (q *Queue) Next() Pair {
	q.topUp()
	head := q.pairs[0]
	q.pairs = q.pairs[1:]
	q.topUp()
	return head
}

// Peek returns the head of the queue without removing it.
func (q *Queue) Peek() (Pair, bool) {
	if len(q.pairs) == 0 {
		return Pair{}, false
	}
	return q.pairs[0], true
}

// Upcoming returns a copy of the next n queued pairs.
func (q *Queue) Upcoming(n int) []Pair {
	if n > len(q.pairs) {
		n = len(q.pairs)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Pair, n)
	copy(out, q.pairs[:n])
	return out
}

// Len returns the number of queued pairs.
func (q *Queue) Len() int {
	return len(q.pairs)
}
