package field

import "math"

// Stats summarises a grid's value distribution. A display collaborator uses
// Min/Max to build its colour scale.
type Stats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Stats computes min, max, mean and population standard deviation in one pass
// (Welford's update).
// Complexity: O(n²).
func (g *Grid) Stats() Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var mean, m2 float64
	for i, v := range g.data {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	s.Mean = mean
	s.StdDev = math.Sqrt(m2 / float64(len(g.data)))

	return s
}

// AllFinite reports whether every cell is finite.
func (g *Grid) AllFinite() bool {
	for _, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
