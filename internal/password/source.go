package password

import "math/rand/v2"

// Source supplies randomness to the generator. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a PCG-backed source. A zero seed draws the seed from the
// runtime's randomly seeded global generator; any other seed is reproducible.
//
// The source is not cryptographically secure. Generated values are meant for
// everyday account passwords, not key material.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
