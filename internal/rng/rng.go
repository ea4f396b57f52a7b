// Package rng provides the random sources used by crafting mechanics.
package rng

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness a mechanic draws from
type Source interface {
	IntN(n int) int // [0, n)
}

// processSource draws from the goroutine-safe top-level math/rand/v2 functions
type processSource struct{}

func (processSource) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // Game logic randomness, not security critical

// Default returns the process-wide source. It is safe for concurrent use.
func Default() Source { return processSource{} }

// seededSource is a replicable PCG source for fixtures and Monte Carlo trials.
// It is not safe for concurrent use; give each goroutine its own.
type seededSource struct{ r *rand.Rand }

// NewSeeded returns a deterministic source for the seed
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seedStream))}
}

func (s *seededSource) IntN(n int) int { return s.r.IntN(n) }

// seedStream is the fixed PCG stream selector; only the seed varies between sources
const seedStream = 0x9e3779b97f4a7c15

// lockedSource serialises access to a wrapped source
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src so it can be shared between goroutines
func NewLocked(src Source) Source {
	return &lockedSource{src: src}
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// IntBetween returns a uniform integer in [min, max]
func IntBetween(src Source, min, max int) int {
	if min >= max {
		return min
	}
	return min + src.IntN(max-min+1)
}

// DeriveSeed returns the seed of trial i under base; trials never share a stream
func DeriveSeed(base uint64, i int) uint64 {
	// splitmix64 step keeps neighbouring trials uncorrelated
	z := base + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
