// Package rng provides the seeded generator that drives maze carving.
//
// The generator is mulberry32: a single 32-bit state word advanced by a Weyl
// increment and scrambled with multiply/xor-shift rounds. All arithmetic is
// uint32 so a seed yields the same sequence on every platform, which replay
// and golden tests depend on.
package rng

// weyl is the per-call state increment
const weyl uint32 = 0x6D2B79F5

// Source is a deterministic, non-cryptographic generator
// Not safe for concurrent use; each algorithm run owns its own instance
type Source struct {
	seed  uint32
	state uint32
}

// New creates a generator from a 32-bit seed
func New(seed uint32) *Source {
	return &Source{seed: seed, state: seed}
}

// Seed returns the seed the generator was created with
func (s *Source) Seed() uint32 {
	return s.seed
}

// Uint32 advances the state and returns the next scrambled word
func (s *Source) Uint32() uint32 {
	s.state += weyl
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Next returns a float in [0,1)
func (s *Source) Next() float64 {
	return float64(s.Uint32()) / 4294967296.0
}

// IntN returns an integer in [lo,hi], both inclusive
// Returns lo when hi <= lo
func (s *Source) IntN(lo, hi int) int {
	if hi <= lo {
		// A draw is consumed even for a single-value range
		s.Uint32()
		return lo
	}
	return lo + int(s.Next()*float64(hi-lo+1))
}

// Shuffle permutes n elements in place with Fisher-Yates, walking from the tail
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntN(0, i)
		swap(i, j)
	}
}
