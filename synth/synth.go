package synth

import (
	"fmt"

	"github.com/katalvlaran/potfield/field"
)

// Synthesize builds a size×size potential field from 3·complexity features
// (see package doc), additive noise and a Gaussian blur.
//
// Preconditions (validated before any allocation):
//  1. size > 0.
//  2. complexity >= 0; 0 yields a noise-only, smoothed field.
//  3. Option values in range (see Options).
//
// Returns ErrInvalidParameter on any violation.
// Complexity: O(F·N² + N²·R) time, O(N²) memory.
func Synthesize(size, complexity int, opts ...Option) (*field.Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(size, complexity); err != nil {
		return nil, err
	}
	src := cfg.Source
	if src == nil {
		src = RandomSource()
	}

	return synthesize(size, complexity, cfg, src)
}

// synthesize runs the four stages against an already validated config.
func synthesize(n, complexity int, cfg Options, src Source) (*field.Grid, error) {
	data := make([]float64, n*n)

	// Stage 1: features.
	mesh := linspace(n)
	count := cfg.FeaturesPerComplexity * complexity
	for i := 0; i < count; i++ {
		DrawFeature(src, n).accumulate(data, n, mesh)
	}

	// Stage 2: noise.
	AddNoise(data, src, cfg.NoiseStdDev)

	// Stage 3: low-pass.
	if err := GaussianBlur(data, n, cfg.BlurSigma, cfg.Truncate, cfg.Border); err != nil {
		return nil, fmt.Errorf("synth: blur: %w", err)
	}

	// Stage 4: hand ownership to the Grid.
	return field.Wrap(n, data)
}

// AddNoise adds sd·N(0,1) to every cell in row-major order. sd == 0 leaves
// data untouched and consumes no randomness.
func AddNoise(data []float64, src Source, sd float64) {
	if sd == 0 {
		return
	}
	for i := range data {
		data[i] += sd * src.NormFloat64()
	}
}

// Synthesizer is the "regenerate" handle held by a collaborator: it fixes
// size, complexity and options, and keeps one Source across calls so each
// Generate yields a new field. Seeded Synthesizers replay the same sequence
// of fields when re-created with the same seed.
//
// A Synthesizer is not safe for concurrent use.
type Synthesizer struct {
	size       int
	complexity int
	cfg        Options
}

// NewSynthesizer validates parameters once and returns a reusable generator.
func NewSynthesizer(size, complexity int, opts ...Option) (*Synthesizer, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(size, complexity); err != nil {
		return nil, err
	}
	if cfg.Source == nil {
		cfg.Source = RandomSource()
	}

	return &Synthesizer{size: size, complexity: complexity, cfg: cfg}, nil
}

// Size returns the configured side length.
func (s *Synthesizer) Size() int { return s.size }

// Complexity returns the configured complexity.
func (s *Synthesizer) Complexity() int { return s.complexity }

// Generate produces the next field from the Synthesizer's stream.
func (s *Synthesizer) Generate() (*field.Grid, error) {
	return synthesize(s.size, s.complexity, s.cfg, s.cfg.Source)
}
