// Package rng provides an injectable random source so gameplay rolls
// (crit, lucky, quality) stay deterministic under test.
package rng

import (
	"math/rand"
	"sync"
)

// Roller produces values in [0, 1)
type Roller interface {
	Float64() float64
}

// Source is a Roller backed by math/rand, safe for use from the
// single-writer engine loop.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Roller seeded with seed
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next value in [0, 1)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Fixed is a Roller that replays a fixed sequence, wrapping at the end.
// Tests use it to force or suppress crit/lucky/quality outcomes.
type Fixed struct {
	seq []float64
	i   int
}

// NewFixed returns a Roller replaying seq
func NewFixed(seq ...float64) *Fixed {
	if len(seq) == 0 {
		seq = []float64{0.99}
	}
	return &Fixed{seq: seq}
}

// Float64 returns the next value in the sequence
func (f *Fixed) Float64() float64 {
	v := f.seq[f.i%len(f.seq)]
	f.i++
	return v
}
