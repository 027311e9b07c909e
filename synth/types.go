package synth

import (
	"fmt"

	"github.com/katalvlaran/potfield/field"
)

// ErrInvalidParameter aliases field.ErrInvalidParameter so callers can match
// either name with errors.Is.
var ErrInvalidParameter = field.ErrInvalidParameter

// Defaults used by DefaultOptions and the package-level constants callers
// may want to display.
const (
	DefaultSize                  = 300
	DefaultComplexity            = 5
	DefaultFeaturesPerComplexity = 3
	DefaultNoiseStdDev           = 0.2
	DefaultBlurSigma             = 3.0
	DefaultTruncate              = 4.0

	// MaxFeatures caps FeaturesPerComplexity·complexity.
	MaxFeatures = 1 << 20
)

// Feature draw ranges.
const (
	minAmplitude = -2.0
	maxAmplitude = 2.0
	minScale     = 0.5
	maxScale     = 2.0
	minSharpness = 3.0
	maxSharpness = 10.0
)

// Border selects how the blur samples outside the grid.
type Border int

const (
	// Reflect mirrors about the edge, repeating the edge cell: d c b a | a b c d | d c b a.
	Reflect Border = iota
	// Nearest clamps to the edge cell: a a a a | a b c d | d d d d.
	Nearest
	// Wrap samples the opposite edge, matching the toroidal feature shift.
	Wrap
)

// String returns the border name used in configuration files.
func (b Border) String() string {
	switch b {
	case Reflect:
		return "reflect"
	case Nearest:
		return "nearest"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("Border(%d)", int(b))
	}
}

// ParseBorder maps "reflect", "nearest" or "wrap" to a Border.
func ParseBorder(s string) (Border, error) {
	switch s {
	case "", "reflect":
		return Reflect, nil
	case "nearest":
		return Nearest, nil
	case "wrap":
		return Wrap, nil
	default:
		return Reflect, fmt.Errorf("%w: unknown border %q", ErrInvalidParameter, s)
	}
}

// Options configures Synthesize.
//
// Source                – random stream; nil means RandomSource() per call.
// FeaturesPerComplexity – features drawn per complexity unit (≥ 0).
// NoiseStdDev           – standard deviation of additive noise (≥ 0).
// BlurSigma             – Gaussian low-pass σ in cells (≥ 0; 0 disables).
// Truncate              – kernel radius in units of σ (> 0).
// Border                – blur edge policy.
type Options struct {
	Source                Source
	FeaturesPerComplexity int
	NoiseStdDev           float64
	BlurSigma             float64
	Truncate              float64
	Border                Border
}

// Option represents a functional option for configuring Synthesize.
type Option func(*Options)

// DefaultOptions returns the documented defaults:
//   - Source:                nil (fresh entropy each call).
//   - FeaturesPerComplexity: 3.
//   - NoiseStdDev:           0.2.
//   - BlurSigma:             3.
//   - Truncate:              4.
//   - Border:                Reflect.
func DefaultOptions() Options {
	return Options{
		FeaturesPerComplexity: DefaultFeaturesPerComplexity,
		NoiseStdDev:           DefaultNoiseStdDev,
		BlurSigma:             DefaultBlurSigma,
		Truncate:              DefaultTruncate,
		Border:                Reflect,
	}
}

// WithSeed makes synthesis deterministic using NewSource(seed).
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Source = NewSource(seed)
	}
}

// WithSource injects an explicit random stream.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithFeaturesPerComplexity overrides the 3-features-per-unit multiplier.
func WithFeaturesPerComplexity(k int) Option {
	return func(o *Options) {
		o.FeaturesPerComplexity = k
	}
}

// WithNoiseStdDev sets the additive noise standard deviation.
func WithNoiseStdDev(sd float64) Option {
	return func(o *Options) {
		o.NoiseStdDev = sd
	}
}

// WithBlurSigma sets the low-pass σ; 0 skips smoothing.
func WithBlurSigma(sigma float64) Option {
	return func(o *Options) {
		o.BlurSigma = sigma
	}
}

// WithTruncate sets the kernel radius in units of σ.
func WithTruncate(t float64) Option {
	return func(o *Options) {
		o.Truncate = t
	}
}

// WithBorder sets the blur edge policy.
func WithBorder(b Border) Option {
	return func(o *Options) {
		o.Border = b
	}
}

// validate checks options and the size/complexity pair. Order: size,
// complexity, then option fields.
func (o Options) validate(size, complexity int) error {
	if size <= 0 {
		return fmt.Errorf("%w: size must be > 0, got %d", ErrInvalidParameter, size)
	}
	if complexity < 0 {
		return fmt.Errorf("%w: complexity must be >= 0, got %d", ErrInvalidParameter, complexity)
	}
	if o.FeaturesPerComplexity < 0 {
		return fmt.Errorf("%w: features per complexity must be >= 0, got %d", ErrInvalidParameter, o.FeaturesPerComplexity)
	}
	if o.FeaturesPerComplexity > 0 && complexity > MaxFeatures/o.FeaturesPerComplexity {
		return fmt.Errorf("%w: %d×%d features exceeds %d", ErrInvalidParameter, o.FeaturesPerComplexity, complexity, MaxFeatures)
	}
	if !(o.NoiseStdDev >= 0) {
		return fmt.Errorf("%w: noise stddev must be >= 0, got %g", ErrInvalidParameter, o.NoiseStdDev)
	}
	if !(o.BlurSigma >= 0) {
		return fmt.Errorf("%w: blur sigma must be >= 0, got %g", ErrInvalidParameter, o.BlurSigma)
	}
	if !(o.Truncate > 0) {
		return fmt.Errorf("%w: truncate must be > 0, got %g", ErrInvalidParameter, o.Truncate)
	}
	if o.Border < Reflect || o.Border > Wrap {
		return fmt.Errorf("%w: %s", ErrInvalidParameter, o.Border)
	}

	return nil
}
