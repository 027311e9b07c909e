package descent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/potfield/field"
)

// ErrBadMaxIterations indicates a negative iteration budget.
var ErrBadMaxIterations = errors.New("descent: MaxIterations must be non-negative")

// DefaultMaxIterations caps the number of greedy steps.
const DefaultMaxIterations = 10000

// StallPolicy decides what happens when the current cell is its own best candidate.
type StallPolicy int

const (
	// StallContinue keeps the legacy behaviour: re-selecting the current cell is a
	// legal step, it is appended to the path again and costs one iteration. A pinned
	// search repeats the same cell until the budget is spent.
	StallContinue StallPolicy = iota

	// StallStop ends the search on the first self-selection without appending.
	StallStop
)

// String returns the policy name used in configuration files.
func (p StallPolicy) String() string {
	switch p {
	case StallContinue:
		return "continue"
	case StallStop:
		return "stop"
	default:
		return fmt.Sprintf("StallPolicy(%d)", int(p))
	}
}

// ParseStallPolicy maps "continue" or "stop" to a StallPolicy.
func ParseStallPolicy(s string) (StallPolicy, error) {
	switch s {
	case "", "continue":
		return StallContinue, nil
	case "stop":
		return StallStop, nil
	default:
		return StallContinue, fmt.Errorf("descent: unknown stall policy %q", s)
	}
}

// Outcome classifies how a search ended.
type Outcome int

const (
	// Reached means the path ends on the goal.
	Reached Outcome = iota
	// DeadEnd means no unvisited in-bounds neighbour remained.
	DeadEnd
	// Stalled means the last decision was a self-selection.
	Stalled
	// Exhausted means the iteration budget ran out while still moving.
	Exhausted
)

// String returns a lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Reached:
		return "reached"
	case DeadEnd:
		return "dead_end"
	case Stalled:
		return "stalled"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures Search.
//
// MaxIterations – greedy steps allowed (≥ 0). The path holds at most MaxIterations+1 cells.
// Stall        – behaviour on self-selection.
type Options struct {
	MaxIterations int
	Stall         StallPolicy
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns MaxIterations=10000 and StallContinue.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Stall:         StallContinue,
	}
}

// WithMaxIterations sets the step budget. Negative values make Search return ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithStallPolicy selects the self-selection behaviour.
func WithStallPolicy(p StallPolicy) Option {
	return func(o *Options) {
		o.Stall = p
	}
}

// Result is the outcome of one Search.
type Result struct {
	Path       Path
	Outcome    Outcome
	Iterations int // greedy steps taken; always len(Path)-1
}

// Reached reports whether the path ends on goal.
func (r *Result) Reached() bool { return r.Outcome == Reached }

// Path is an ordered sequence of cells starting at the search start.
// Consecutive cells are 8-neighbours or identical (a stall step).
type Path []field.Coord

// Len returns the number of cells.
func (p Path) Len() int { return len(p) }

// Last returns the final cell. Paths from Search are never empty.
func (p Path) Last() field.Coord { return p[len(p)-1] }

// Reaches reports whether the path is non-empty and ends on goal.
func (p Path) Reaches(goal field.Coord) bool {
	return len(p) > 0 && p[len(p)-1] == goal
}

// Cost sums the potential of every cell on the path, repeats included.
func (p Path) Cost(g *field.Grid) float64 {
	var sum float64
	for _, c := range p {
		sum += g.At(c)
	}

	return sum
}

// ErrBrokenPath reports a path whose consecutive cells are neither equal nor 8-neighbours.
var ErrBrokenPath = errors.New("descent: consecutive path cells are not adjacent")

// Validate checks the adjacency invariant.
func (p Path) Validate() error {
	for i := 1; i < len(p); i++ {
		if d := p[i-1].Chebyshev(p[i]); d > 1 {
			return fmt.Errorf("%w: %s -> %s at %d", ErrBrokenPath, p[i-1], p[i], i)
		}
	}

	return nil
}
