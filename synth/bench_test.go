package synth_test

import (
	"testing"

	"github.com/katalvlaran/potfield/synth"
)

// BenchmarkSynthesize_Default measures a default-sized 300×300 field with complexity 5.
// Complexity: O(15·N² + N²·25).
func BenchmarkSynthesize_Default(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := synth.Synthesize(synth.DefaultSize, synth.DefaultComplexity, synth.WithSeed(uint64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGaussianBlur measures the separable blur alone on a 300×300 buffer.
func BenchmarkGaussianBlur(b *testing.B) {
	const n = 300
	data := make([]float64, n*n)
	data[n*n/2] = 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = synth.GaussianBlur(data, n, synth.DefaultBlurSigma, synth.DefaultTruncate, synth.Reflect)
	}
}
