package synth_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/potfield/field"
	"github.com/katalvlaran/potfield/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSynthesize_ShapeAndFinite: every valid (N, C) yields exactly N×N finite values.
func TestSynthesize_ShapeAndFinite(t *testing.T) {
	cases := []struct{ n, c int }{{1, 1}, {2, 3}, {7, 0}, {32, 5}, {64, 2}}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("N%d_C%d", tc.n, tc.c), func(t *testing.T) {
			g, err := synth.Synthesize(tc.n, tc.c, synth.WithSeed(7))
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.Size())
			assert.Len(t, g.Rows(), tc.n)
			for _, row := range g.Rows() {
				assert.Len(t, row, tc.n)
			}
			assert.True(t, g.AllFinite())
		})
	}
}

// TestSynthesize_Deterministic: identical seeds give bit-identical grids.
func TestSynthesize_Deterministic(t *testing.T) {
	a, err := synth.Synthesize(48, 5, synth.WithSeed(42))
	require.NoError(t, err)
	b, err := synth.Synthesize(48, 5, synth.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must reproduce the field")

	c, err := synth.Synthesize(48, 5, synth.WithSeed(43))
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should differ")
}

// TestSynthesize_UnseededDiffers: two calls without a seed draw fresh streams.
func TestSynthesize_UnseededDiffers(t *testing.T) {
	a, err := synth.Synthesize(16, 2)
	require.NoError(t, err)
	b, err := synth.Synthesize(16, 2)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

// TestSynthesize_InvalidParameter rejects malformed input before doing work.
func TestSynthesize_InvalidParameter(t *testing.T) {
	cases := []struct {
		name string
		n, c int
		opts []synth.Option
	}{
		{"ZeroSize", 0, 5, nil},
		{"NegativeSize", -3, 5, nil},
		{"NegativeComplexity", 10, -1, nil},
		{"NegativeNoise", 10, 1, []synth.Option{synth.WithNoiseStdDev(-0.1)}},
		{"NegativeSigma", 10, 1, []synth.Option{synth.WithBlurSigma(-1)}},
		{"ZeroTruncate", 10, 1, []synth.Option{synth.WithTruncate(0)}},
		{"NegativeFeatures", 10, 1, []synth.Option{synth.WithFeaturesPerComplexity(-1)}},
		{"BadBorder", 10, 1, []synth.Option{synth.WithBorder(synth.Border(9))}},
		{"TooManyFeatures", 4, synth.MaxFeatures/synth.DefaultFeaturesPerComplexity + 1, nil},
		{"OverflowingComplexity", 4, math.MaxInt / 2, nil},
		{"OverflowingMultiplier", 4, 3, []synth.Option{synth.WithFeaturesPerComplexity(math.MaxInt / 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := synth.Synthesize(tc.n, tc.c, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, synth.ErrInvalidParameter)
			assert.ErrorIs(t, err, field.ErrInvalidParameter)
		})
	}
}

// TestSynthesize_ZeroComplexityIsNoiseAndBlur: with no features the field equals
// noise from the same stream passed through the same blur.
func TestSynthesize_ZeroComplexityIsNoiseAndBlur(t *testing.T) {
	const n = 24
	g, err := synth.Synthesize(n, 0, synth.WithSeed(9))
	require.NoError(t, err)

	data := make([]float64, n*n)
	synth.AddNoise(data, synth.NewSource(9), synth.DefaultNoiseStdDev)
	require.NoError(t, synth.GaussianBlur(data, n, synth.DefaultBlurSigma, synth.DefaultTruncate, synth.Reflect))
	want, err := field.Wrap(n, data)
	require.NoError(t, err)

	assert.True(t, g.Equal(want))
	// σ=0.2 noise smoothed by σ=3 stays small.
	s := g.Stats()
	assert.Less(t, s.Max, 0.5)
	assert.Greater(t, s.Min, -0.5)
}

// TestSynthesize_NoNoiseNoBlurIsFeatureSum: disabling noise and blur leaves the
// plain superposition of drawn features.
func TestSynthesize_NoNoiseNoBlurIsFeatureSum(t *testing.T) {
	const n, c = 17, 2
	g, err := synth.Synthesize(n, c,
		synth.WithSeed(3), synth.WithNoiseStdDev(0), synth.WithBlurSigma(0))
	require.NoError(t, err)

	src := synth.NewSource(3)
	data := make([]float64, n*n)
	for i := 0; i < 3*c; i++ {
		synth.DrawFeature(src, n).Accumulate(data, n)
	}
	want, err := field.Wrap(n, data)
	require.NoError(t, err)
	assert.True(t, g.Equal(want))
}

// TestSynthesizer_Regenerate: successive Generate calls differ, and a re-created
// seeded Synthesizer replays the same sequence.
func TestSynthesizer_Regenerate(t *testing.T) {
	s1, err := synth.NewSynthesizer(20, 3, synth.WithSeed(11))
	require.NoError(t, err)
	a1, err := s1.Generate()
	require.NoError(t, err)
	a2, err := s1.Generate()
	require.NoError(t, err)
	assert.False(t, a1.Equal(a2))

	s2, err := synth.NewSynthesizer(20, 3, synth.WithSeed(11))
	require.NoError(t, err)
	b1, _ := s2.Generate()
	b2, _ := s2.Generate()
	assert.True(t, a1.Equal(b1))
	assert.True(t, a2.Equal(b2))
	assert.Equal(t, 20, s2.Size())
	assert.Equal(t, 3, s2.Complexity())

	_, err = synth.NewSynthesizer(0, 3)
	assert.ErrorIs(t, err, synth.ErrInvalidParameter)
}

// TestParseBorder round-trips names and rejects unknown ones.
func TestParseBorder(t *testing.T) {
	for _, b := range []synth.Border{synth.Reflect, synth.Nearest, synth.Wrap} {
		got, err := synth.ParseBorder(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := synth.ParseBorder("mirror")
	assert.ErrorIs(t, err, synth.ErrInvalidParameter)
}
