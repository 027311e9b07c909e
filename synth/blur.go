package synth

import (
	"fmt"
	"math"
)

// gaussianKernel returns the normalised 1-D kernel of radius int(truncate·σ + 0.5).
// σ == 0 yields the identity kernel [1].
func gaussianKernel(sigma, truncate float64) []float64 {
	radius := int(truncate*sigma + 0.5)
	if sigma == 0 || radius == 0 {
		return []float64{1}
	}
	k := make([]float64, 2*radius+1)
	var sum float64
	inv := -0.5 / (sigma * sigma)
	for i := -radius; i <= radius; i++ {
		w := math.Exp(inv * float64(i*i))
		k[i+radius] = w
		sum += w
	}
	for i := range k {
		k[i] /= sum
	}

	return k
}

// borderIndex maps any integer position onto [0, n) under the policy b.
// Valid for positions arbitrarily far outside the grid.
func borderIndex(i, n int, b Border) int {
	if i >= 0 && i < n {
		return i
	}
	switch b {
	case Nearest:
		if i < 0 {
			return 0
		}
		return n - 1
	case Wrap:
		return mod(i, n)
	default: // Reflect, period 2n
		m := mod(i, 2*n)
		if m >= n {
			m = 2*n - 1 - m
		}
		return m
	}
}

// GaussianBlur low-pass filters the n×n row-major buffer data in place with an
// isotropic Gaussian of standard deviation sigma, as two 1-D passes
// (columns first, then rows). Kernel radius is int(truncate·sigma + 0.5).
//
// Returns ErrInvalidParameter for a length mismatch, sigma < 0 or truncate <= 0.
// Complexity: O(n²·R) time, O(n + R) extra memory.
func GaussianBlur(data []float64, n int, sigma, truncate float64, border Border) error {
	if n <= 0 || len(data) != n*n {
		return fmt.Errorf("%w: %d values for size %d", ErrInvalidParameter, len(data), n)
	}
	if !(sigma >= 0) || !(truncate > 0) {
		return fmt.Errorf("%w: sigma=%g truncate=%g", ErrInvalidParameter, sigma, truncate)
	}
	kernel := gaussianKernel(sigma, truncate)
	if len(kernel) == 1 {
		return nil
	}
	radius := len(kernel) / 2

	// Padded line buffer: padded[k] holds the sample at position k-radius.
	padded := make([]float64, n+2*radius)
	line := make([]float64, n)

	// Pass 1: along each column (axis 0).
	for c := 0; c < n; c++ {
		for k := range padded {
			padded[k] = data[borderIndex(k-radius, n, border)*n+c]
		}
		convolve(line, padded, kernel)
		for r := 0; r < n; r++ {
			data[r*n+c] = line[r]
		}
	}

	// Pass 2: along each row (axis 1).
	for r := 0; r < n; r++ {
		row := data[r*n : (r+1)*n]
		for k := range padded {
			padded[k] = row[borderIndex(k-radius, n, border)]
		}
		convolve(row, padded, kernel)
	}

	return nil
}

// convolve writes dst[i] = Σ kernel[k]·padded[i+k]; len(padded) == len(dst)+len(kernel)-1.
func convolve(dst, padded, kernel []float64) {
	for i := range dst {
		var acc float64
		window := padded[i : i+len(kernel)]
		for k, w := range kernel {
			acc += w * window[k]
		}
		dst[i] = acc
	}
}
