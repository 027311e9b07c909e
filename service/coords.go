package service

import "github.com/katalvlaran/potfield/field"

// ToGrid converts a display-space point on a square plot spanning [0, extent]
// on both axes into the cell of an n×n grid: column from x, row from y.
// Points on or past the far edge clamp to the last cell.
func ToGrid(x, y, extent float64, n int) field.Coord {
	return field.Coord{Row: toIndex(y, extent, n), Col: toIndex(x, extent, n)}
}

// ToDisplay maps a cell back to the display-space position of its lower corner.
func ToDisplay(c field.Coord, extent float64, n int) (x, y float64) {
	return float64(c.Col) / float64(n) * extent, float64(c.Row) / float64(n) * extent
}

// toIndex clamps in float space before converting to int. NaN maps to 0.
func toIndex(v, extent float64, n int) int {
	f := v / extent * float64(n)
	switch {
	case f >= float64(n):
		return n - 1
	case !(f >= 0):
		return 0
	}
	return int(f)
}
