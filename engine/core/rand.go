package core

import "math/rand"

// Rand is the randomness used by placement, palettes and spark timing.
// None of it needs to be secure or reproducible across runs; tests inject
// fixed sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a math/rand source seeded with seed
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// SequenceRand replays Values in order, wrapping around at the end.
// An empty sequence always yields 0.
type SequenceRand struct {
	Values []float64
	next   int
}

// NewSequenceRand creates a SequenceRand over values
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{Values: values}
}

func (r *SequenceRand) Float64() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 0.9999999
	}
	return v
}

func (r *SequenceRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// Chance reports whether a roll from r lands under p
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// Between returns a uniform sample in [lo, hi)
func Between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
