package synth

import "math"

// Feature describes one anisotropic Gaussian bump. ShiftRow/ShiftCol are a
// wrap-around displacement of the midpoint-centred bump, not a literal centre.
// Features are drawn, accumulated and discarded during synthesis.
type Feature struct {
	ShiftRow  int
	ShiftCol  int
	Amplitude float64
	ScaleX    float64
	ScaleY    float64
	Sharpness float64
}

// DrawFeature consumes src in a fixed order: column shift, row shift,
// amplitude, x-scale, y-scale, sharpness. Reordering changes every seeded field.
func DrawFeature(src Source, n int) Feature {
	var f Feature
	f.ShiftCol = src.IntN(n)
	f.ShiftRow = src.IntN(n)
	f.Amplitude = uniform(src, minAmplitude, maxAmplitude)
	f.ScaleX = uniform(src, minScale, maxScale)
	f.ScaleY = uniform(src, minScale, maxScale)
	f.Sharpness = uniform(src, minSharpness, maxSharpness)

	return f
}

// Accumulate adds the shifted feature into dst, an n×n row-major buffer.
// Shifts are reduced modulo n, so (n, n) and (0, 0) place the bump identically
// and negative shifts wrap the other way.
// Complexity: O(n²) time, O(n) extra memory.
func (f Feature) Accumulate(dst []float64, n int) {
	f.accumulate(dst, n, linspace(n))
}

// accumulate is Accumulate with a caller-owned mesh, reused across features.
// exp(-(a+b)k) factors into exp(-ak)·exp(-bk), so only 2n exponentials are taken.
func (f Feature) accumulate(dst []float64, n int, mesh []float64) {
	ex := make([]float64, n)
	ey := make([]float64, n)
	for i, m := range mesh {
		x := m * f.ScaleX
		y := m * f.ScaleY
		ex[i] = math.Exp(-x * x * f.Sharpness)
		ey[i] = f.Amplitude * math.Exp(-y*y*f.Sharpness)
	}

	cy := mod(f.ShiftRow, n)
	cx := mod(f.ShiftCol, n)
	for i := 0; i < n; i++ {
		row := dst[((i+cy)%n)*n : ((i+cy)%n+1)*n]
		wy := ey[i]
		for j := 0; j < n; j++ {
			row[(j+cx)%n] += wy * ex[j]
		}
	}
}

// linspace returns n evenly spaced samples over [-1, 1]. n == 1 yields [-1].
func linspace(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = -1
		return out
	}
	step := 2.0 / float64(n-1)
	for i := range out {
		out[i] = -1 + step*float64(i)
	}
	out[n-1] = 1

	return out
}

// mod returns a mod n in [0, n) for n > 0.
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}

	return a
}
