package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGaussianKernel_Shape checks radius, symmetry and normalisation for σ=3.
func TestGaussianKernel_Shape(t *testing.T) {
	k := gaussianKernel(3, 4)
	require.Len(t, k, 25) // radius int(4*3+0.5) = 12
	var sum float64
	for i := range k {
		sum += k[i]
		assert.InDelta(t, k[i], k[len(k)-1-i], 1e-15)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Equal(t, []float64{1}, gaussianKernel(0, 4))
}

// TestBorderIndex covers each policy, including positions beyond one period.
func TestBorderIndex(t *testing.T) {
	cases := []struct {
		b    Border
		i, n int
		want int
	}{
		{Reflect, -1, 4, 0},
		{Reflect, -2, 4, 1},
		{Reflect, 4, 4, 3},
		{Reflect, 5, 4, 2},
		{Reflect, -9, 4, 0},
		{Reflect, 13, 4, 2},
		{Reflect, 7, 1, 0},
		{Nearest, -5, 4, 0},
		{Nearest, 9, 4, 3},
		{Wrap, -1, 4, 3},
		{Wrap, 9, 4, 1},
		{Wrap, 2, 4, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, borderIndex(tc.i, tc.n, tc.b), "%s i=%d n=%d", tc.b, tc.i, tc.n)
	}
}

// TestGaussianBlur_ConstantPreserved: a normalised kernel leaves a flat field flat
// under every border policy, even when the kernel is wider than the grid.
func TestGaussianBlur_ConstantPreserved(t *testing.T) {
	for _, b := range []Border{Reflect, Nearest, Wrap} {
		for _, n := range []int{1, 3, 30} {
			data := make([]float64, n*n)
			for i := range data {
				data[i] = 1.5
			}
			require.NoError(t, GaussianBlur(data, n, 3, 4, b))
			for i := range data {
				assert.InDelta(t, 1.5, data[i], 1e-12, "border=%s n=%d", b, n)
			}
		}
	}
}

// TestGaussianBlur_WrapConservesMass: with toroidal borders the total is unchanged
// and a single impulse spreads symmetrically.
func TestGaussianBlur_WrapConservesMass(t *testing.T) {
	const n = 21
	data := make([]float64, n*n)
	data[10*n+10] = 1
	require.NoError(t, GaussianBlur(data, n, 2, 4, Wrap))

	var sum float64
	for _, v := range data {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, data[10*n+9], data[10*n+11], 1e-15)
	assert.InDelta(t, data[9*n+10], data[11*n+10], 1e-15)
	assert.Greater(t, data[10*n+10], data[10*n+11])
}

// TestGaussianBlur_ZeroSigmaIdentity leaves data unchanged.
func TestGaussianBlur_ZeroSigmaIdentity(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	require.NoError(t, GaussianBlur(data, 2, 0, 4, Reflect))
	assert.Equal(t, []float64{1, 2, 3, 4}, data)
}

// TestGaussianBlur_Invalid rejects bad shapes and parameters.
func TestGaussianBlur_Invalid(t *testing.T) {
	assert.ErrorIs(t, GaussianBlur([]float64{1, 2, 3}, 2, 1, 4, Reflect), ErrInvalidParameter)
	assert.ErrorIs(t, GaussianBlur([]float64{1}, 1, -1, 4, Reflect), ErrInvalidParameter)
	assert.ErrorIs(t, GaussianBlur([]float64{1}, 1, 1, 0, Reflect), ErrInvalidParameter)
	assert.ErrorIs(t, GaussianBlur([]float64{1}, 1, math.NaN(), 4, Reflect), ErrInvalidParameter)
}
