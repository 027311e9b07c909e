// Package field holds the square potential grid shared by synthesis and search.
//
// What:
//
//   - Grid is an N×N row-major field of float64 potentials, fixed size, no exported mutators.
//   - Coord addresses a cell as (Row, Col). Display x maps to Col, y to Row.
//   - Neighbors8 enumerates the 8-connected neighbourhood in a fixed order:
//     right, left, down, up, then (+1,+1), (-1,-1), (-1,+1), (+1,-1).
//   - Stats summarises a grid: Min, Max, Mean and population StdDev.
//
// Why:
//
//   - Synthesis builds a flat buffer once and hands ownership to Wrap.
//   - Searches read the Grid concurrently without locks: nothing mutates it after construction.
//
// Construction:
//
//   - New(n):          zero-valued n×n grid.
//   - Wrap(n, data):   adopts data (len n²) without copying; rejects NaN/±Inf.
//   - FromRows(rows):  deep copy of a square [][]float64; rejects ragged or empty input.
//
// Access:
//
//   - At(c):    unchecked read for hot loops; the caller guarantees InBounds(c).
//   - Value(c): checked read returning ErrOutOfRange with the cell in the message.
//   - InBoundsNeighbors(c, dst): Neighbors8(c) filtered to the grid, appended to dst.
//   - ArgMin(): first minimum in row-major order, so ties go to the lowest row, then column.
//
// Complexity:
//
//   - At, Value, InBounds: O(1).
//   - InBoundsNeighbors: O(1), no allocation when dst has capacity 8.
//   - ArgMin, Stats, AllFinite, Clone, Rows, Equal: O(N²).
//
// Errors (sentinel):
//
//   - ErrInvalidParameter: non-positive size, or a data length that is not n².
//   - ErrEmpty:            FromRows with no rows or an empty first row.
//   - ErrNonSquare:        FromRows with a ragged or rectangular matrix.
//   - ErrOutOfRange:       checked access outside the grid.
//   - ErrNaNInf:           non-finite value at ingestion.
//   - ErrNilGrid:          nil *Grid passed to an algorithm.
//
// Example usage:
//
//	g, err := field.FromRows([][]float64{
//	    {3, 2, 1},
//	    {2, 0, 1},
//	    {1, 1, 2},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	goal := g.ArgMin()                                // (1,1)
//	nbs := g.InBoundsNeighbors(field.Coord{}, nil)    // [(0,1) (1,0) (1,1)]
//	fmt.Println(goal, nbs, g.Stats().Max)
package field
