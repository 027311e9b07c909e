package field

import (
	"fmt"
	"math"
	"strings"
)

// Grid is a square, row-major potential field. n is the side length and data
// holds n*n values. A Grid is immutable once returned by a constructor.
type Grid struct {
	n    int
	data []float64
}

// gridErrorf wraps err with the Grid method and coordinate that triggered it.
func gridErrorf(method string, c Coord, err error) error {
	return fmt.Errorf("Grid.%s%s: %w", method, c, err)
}

// New creates an n×n Grid of zeros.
// Returns ErrInvalidParameter when n <= 0, before allocating.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidParameter, n)
	}

	return &Grid{n: n, data: make([]float64, n*n)}, nil
}

// Wrap takes ownership of data (len n*n, row-major) and returns it as a Grid.
// The caller must not retain or mutate data afterwards.
// Returns ErrInvalidParameter for n <= 0 or a length mismatch, ErrNaNInf for non-finite values.
// Complexity: O(n²) for the finiteness scan.
func Wrap(n int, data []float64) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidParameter, n)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: %d values for size %d", ErrInvalidParameter, len(data), n)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: at (%d,%d)", ErrNaNInf, i/n, i%n)
		}
	}

	return &Grid{n: n, data: data}, nil
}

// FromRows deep-copies a square [][]float64 into a Grid.
// Returns ErrEmpty for no rows/columns, ErrNonSquare for ragged or
// non-square input, ErrNaNInf for non-finite values.
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		data = append(data, row...)
	}

	return Wrap(n, data)
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

// index maps c to its row-major offset. Caller guarantees InBounds(c).
func (g *Grid) index(c Coord) int {
	return c.Row*g.n + c.Col
}

// At returns the value at c without bounds checking; out-of-range c panics
// like a slice index. Use Value for checked access.
func (g *Grid) At(c Coord) float64 {
	return g.data[g.index(c)]
}

// Value returns the value at c, or ErrOutOfRange.
func (g *Grid) Value(c Coord) (float64, error) {
	if !g.InBounds(c) {
		return 0, gridErrorf("Value", c, ErrOutOfRange)
	}

	return g.data[g.index(c)], nil
}

// InBoundsNeighbors appends the in-bounds 8-neighbours of c to dst in
// enumeration order and returns the extended slice.
// Complexity: O(1).
func (g *Grid) InBoundsNeighbors(c Coord, dst []Coord) []Coord {
	for _, nb := range Neighbors8(c) {
		if g.InBounds(nb) {
			dst = append(dst, nb)
		}
	}

	return dst
}

// ArgMin returns the first cell holding the minimum value in row-major order.
// Complexity: O(n²).
func (g *Grid) ArgMin() Coord {
	best := 0
	for i := 1; i < len(g.data); i++ {
		if g.data[i] < g.data[best] {
			best = i
		}
	}

	return Coord{Row: best / g.n, Col: best % g.n}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)

	return &Grid{n: g.n, data: data}
}

// Rows returns a freshly allocated [][]float64 copy, row by row.
func (g *Grid) Rows() [][]float64 {
	out := make([][]float64, g.n)
	for r := 0; r < g.n; r++ {
		row := make([]float64, g.n)
		copy(row, g.data[r*g.n:(r+1)*g.n])
		out[r] = row
	}

	return out
}

// Equal reports whether both grids have the same size and bit-identical values.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i := range g.data {
		if math.Float64bits(g.data[i]) != math.Float64bits(o.data[i]) {
			return false
		}
	}

	return true
}

// String renders the grid one row per line, for debugging small fields.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.n; r++ {
		b.WriteByte('[')
		for c := 0; c < g.n; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", g.data[r*g.n+c])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
