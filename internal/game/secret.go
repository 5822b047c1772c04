package game

import "math/rand/v2"

// Inclusive range of the secret number.
const (
	MinSecret = 1
	MaxSecret = 100
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source seeded with seed.
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// NewSecret returns a uniformly distributed integer in [lo, hi].
// lo must not exceed hi.
func NewSecret(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// globalSource draws from the math/rand/v2 process-wide generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }
