// Package synth generates synthetic potential fields.
//
// A field is the superposition of 3·complexity anisotropic Gaussian features
// (hills for positive amplitude, valleys for negative), plus pointwise
// Gaussian noise, low-pass filtered with a separable Gaussian kernel.
//
// Algorithm (per feature):
//
//  1. Draw a wrap-around shift (cx, cy) uniformly in [0, N).
//  2. Draw amplitude in [-2, 2], anisotropy ax, ay in [0.5, 2], sharpness k in [3, 10].
//  3. Evaluate A·exp(-((x·ax)² + (y·ay)²)·k) on the mesh x, y ∈ linspace(-1, 1, N),
//     so the unshifted bump sits on the grid midpoint.
//  4. Circularly shift rows by cy and columns by cx (explicit modulo N) and accumulate.
//
// Then add N(0, 0.2²) noise to every cell and blur with σ = 3
// (kernel radius int(4σ + 0.5), border Reflect by default).
//
// Determinism:
//
//   - The only randomness is the Source. WithSeed or WithSource makes a run
//     reproducible bit for bit; without either, every call draws a fresh stream.
//   - A Source is not goroutine-safe. Do not share one across concurrent Synthesize calls.
//
// Complexity:
//
//   - Time:  O(F·N² + N²·R) for F = FeaturesPerComplexity·complexity features
//     and kernel radius R = int(Truncate·BlurSigma + 0.5).
//   - Each feature costs 2N exponentials (the bump is separable) plus N² adds.
//   - The blur is two 1-D passes of 2R+1 taps each.
//   - Space: O(N²) for the field, O(N + R) scratch for the blur.
//
// Options:
//
//   - WithSeed(seed):                 reproducible PCG stream.
//   - WithSource(src):                explicit Source, e.g. a scripted one in tests.
//   - WithFeaturesPerComplexity(k):   features per complexity unit (default 3).
//   - WithNoiseStdDev(sd):            additive noise σ (default 0.2; 0 draws nothing).
//   - WithBlurSigma(σ):               low-pass σ in cells (default 3; 0 skips the blur).
//   - WithTruncate(t):                kernel radius in units of σ (default 4).
//   - WithBorder(b):                  Reflect (default), Nearest or Wrap.
//
// Errors (sentinel):
//
//   - ErrInvalidParameter (alias of field.ErrInvalidParameter):
//     size <= 0, complexity < 0, more than MaxFeatures features,
//     or a negative/invalid option value. Checked before any allocation.
//
// Example usage:
//
//	// One reproducible 128×128 field with nine features:
//	g, err := synth.Synthesize(128, 3, synth.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.ArgMin(), g.Stats().Min)
//
//	// A regenerate handle: every Generate continues the same stream.
//	s, _ := synth.NewSynthesizer(128, 3, synth.WithSeed(42))
//	first, _ := s.Generate()
//	second, _ := s.Generate()
package synth
