package core

import "math/rand"

// Rand is the random source games draw from. Production code passes a seeded
// *rand.Rand; tests pass FixedRand to get exact outcomes.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange returns an integer in [lo, hi], both inclusive.
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FixedRand always returns the same offset, clamped to [0, n).
// FixedRand(0) yields the low end of every range; a large value yields the high end.
type FixedRand int

// Intn implements Rand.
func (f FixedRand) Intn(n int) int {
	return Clamp(int(f), 0, n-1)
}

// MaxRoll is a FixedRand that always yields the top of the range.
const MaxRoll = FixedRand(1 << 30)
