// Package descent implements greedy, visited-set constrained cost descent on
// a potential field.
//
// From the current cell the search looks at its in-bounds 8-neighbours that
// have not been visited, adds the current cell to that candidate set, and
// moves to the candidate with the lowest potential. Ties go to the first
// candidate in enumeration order: right, left, down, up, then the diagonals;
// the current cell is always last. It is a local descent, not a shortest-path
// search; see package route for the cost-accumulating alternative.
//
// Termination:
//
//   - Reached:   the current cell equals the goal.
//   - DeadEnd:   every in-bounds neighbour has been visited.
//   - Stalled:   the current cell beat every unvisited neighbour (see StallPolicy).
//   - Exhausted: MaxIterations steps were taken.
//
// None of these is an error. The returned Path is authoritative:
// Path.Last() == goal iff the outcome is Reached.
//
// Complexity: O(MaxIterations) time, O(len(Path)) memory for the path and visited set.
//
// Errors (preconditions only):
//
//   - field.ErrNilGrid:   nil grid.
//   - field.ErrOutOfRange: start or goal outside the grid.
//   - ErrBadMaxIterations: negative iteration budget.
//
// Options:
//
//   - WithMaxIterations(n): step budget (default 10000; 0 returns the start alone).
//   - WithStallPolicy(p):   StallContinue (default) re-appends the current cell
//     and spends a step; StallStop ends the walk at the first self-selection.
//
// Example usage:
//
//	res, err := descent.SearchToMin(g, field.Coord{Row: 0, Col: g.Size() - 1},
//	    descent.WithStallPolicy(descent.StallStop))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Path.Len(), res.Path.Cost(g))
package descent
