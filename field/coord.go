package field

import "fmt"

// Coord addresses a single grid cell.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Chebyshev returns max(|Δrow|, |Δcol|). Two distinct cells are 8-neighbours iff it equals 1.
func (c Coord) Chebyshev(o Coord) int {
	dr, dc := abs(c.Row-o.Row), abs(c.Col-o.Col)
	if dr > dc {
		return dr
	}

	return dc
}

// neighborOffsets is the fixed 8-connected enumeration order:
// right, left, down, up, then (+1,+1), (-1,-1), (-1,+1), (+1,-1).
// Greedy tie-breaking depends on this order; do not reorder.
var neighborOffsets = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
}

// Neighbors8 returns the eight neighbours of c in enumeration order,
// without bounds filtering.
// Complexity: O(1).
func Neighbors8(c Coord) [8]Coord {
	var out [8]Coord
	for i, d := range neighborOffsets {
		out[i] = c.Add(d[0], d[1])
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
