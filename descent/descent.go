package descent

import (
	"fmt"

	"github.com/katalvlaran/potfield/field"
)

// Search walks from start towards goal by greedy descent (see package doc).
//
// Preconditions (in order):
//  1. g is non-nil (field.ErrNilGrid).
//  2. start and goal are inside g (field.ErrOutOfRange).
//  3. MaxIterations >= 0 (ErrBadMaxIterations).
//
// An unreachable goal is not an error: the partial path comes back with
// Outcome DeadEnd, Stalled or Exhausted.
//
// Complexity: O(MaxIterations) time, O(len(Path)) memory.
func Search(g *field.Grid, start, goal field.Coord, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, field.ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("descent: start %s: %w", start, field.ErrOutOfRange)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("descent: goal %s: %w", goal, field.ErrOutOfRange)
	}
	if cfg.MaxIterations < 0 {
		return nil, ErrBadMaxIterations
	}

	s := &searcher{g: g, goal: goal, options: cfg}

	return s.run(start), nil
}

// SearchToMin searches from start towards the field's current global minimum,
// the goal a display collaborator recomputes before every search.
func SearchToMin(g *field.Grid, start field.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, field.ErrNilGrid
	}

	return Search(g, start, g.ArgMin(), opts...)
}

// searcher holds the mutable state of a single Search. Nothing here outlives the call.
type searcher struct {
	g       *field.Grid
	goal    field.Coord
	options Options
	path    Path
	visited map[field.Coord]struct{}
}

// run executes the main loop and classifies the outcome.
func (s *searcher) run(start field.Coord) *Result {
	current := start
	s.path = Path{start}
	s.visited = map[field.Coord]struct{}{start: {}}

	neighbors := make([]field.Coord, 0, 8)
	selfSelected := false
	for i := 0; i < s.options.MaxIterations; i++ {
		if current == s.goal {
			return s.result(Reached)
		}

		next, ok := s.pick(current, neighbors[:0])
		if !ok {
			return s.result(DeadEnd)
		}
		selfSelected = next == current
		if selfSelected && s.options.Stall == StallStop {
			return s.result(Stalled)
		}

		s.path = append(s.path, next)
		s.visited[next] = struct{}{}
		current = next
	}

	switch {
	case current == s.goal:
		return s.result(Reached)
	case selfSelected:
		return s.result(Stalled)
	default:
		return s.result(Exhausted)
	}
}

// pick returns the lowest-valued candidate among the unvisited neighbours of
// current, followed by current itself. The first minimum in enumeration order
// wins, so current is chosen only when strictly lower than every unvisited
// neighbour. ok is false when no unvisited neighbour exists.
func (s *searcher) pick(current field.Coord, buf []field.Coord) (next field.Coord, ok bool) {
	var bestVal float64
	for _, nb := range s.g.InBoundsNeighbors(current, buf) {
		if _, seen := s.visited[nb]; seen {
			continue
		}
		if v := s.g.At(nb); !ok || v < bestVal {
			next, bestVal, ok = nb, v, true
		}
	}
	if !ok {
		return current, false
	}
	if s.g.At(current) < bestVal {
		return current, true
	}

	return next, true
}

func (s *searcher) result(o Outcome) *Result {
	return &Result{Path: s.path, Outcome: o, Iterations: len(s.path) - 1}
}
