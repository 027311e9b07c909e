package synth

import "math/rand/v2"

// Source is the random stream consumed by synthesis. *rand.Rand from
// math/rand/v2 satisfies it; tests may inject scripted sources.
type Source interface {
	// IntN returns a uniform int in [0, n). n > 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal variate.
	NormFloat64() float64
}

// seedStream is the fixed PCG stream selector paired with caller seeds.
// Changing it changes every seeded field.
const seedStream uint64 = 0x9e3779b97f4a7c15

// NewSource returns a deterministic PCG-backed Source: same seed, same stream.
// Complexity: O(1).
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seedStream))
}

// RandomSource returns a Source seeded from the runtime's entropy, so two
// calls produce unrelated streams.
func RandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
