// Package route finds a cost-accumulating shortest path across a potential
// field with A*. It is the optional alternative to the greedy descent in
// package descent and has its own entry point, ShortestPath.
//
// Cost model:
//
//	cost(u→v) = (value(v) − min(field)) + StepWeight·|u−v|₂
//
// Shifting by the field minimum keeps every edge non-negative; the step term
// makes the heuristic h(v) = StepWeight·|v−goal|₂ admissible and consistent,
// so the first time the goal is popped its cost is optimal.
//
// Complexity:
//
//   - Time:  O(V log V) with V = N² cells and at most 8 pushes per expansion.
//   - Space: O(V) for scores, predecessors and the closed set.
//
// Errors (sentinel):
//
//   - field.ErrNilGrid, field.ErrOutOfRange: bad grid or endpoints.
//   - ErrBadStepWeight: StepWeight <= 0 or not finite.
//   - ErrBadMaxExpansions: MaxExpansions < 0.
//   - ErrNoPath: the expansion budget ran out before the goal was settled.
//
// Options:
//
//   - WithStepWeight(w):    per-unit-distance cost (default 0.05, must be > 0).
//   - WithMaxExpansions(n): settled-cell cap (default 0, no cap).
//
// Example usage:
//
//	res, err := route.ShortestPath(g, start, g.ArgMin(), route.WithStepWeight(0.1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d cells, cost %.3f, %d expanded\n", res.Path.Len(), res.Cost, res.Expanded)
package route

import (
	"errors"

	"github.com/katalvlaran/potfield/descent"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrBadStepWeight indicates a non-positive or non-finite step weight.
	ErrBadStepWeight = errors.New("route: StepWeight must be positive and finite")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("route: MaxExpansions must be non-negative")

	// ErrNoPath indicates the goal was not settled within MaxExpansions.
	ErrNoPath = errors.New("route: goal not reached within expansion budget")
)

// DefaultStepWeight is the per-unit-distance cost added to every move.
const DefaultStepWeight = 0.05

// Options configures ShortestPath.
//
// StepWeight    – cost per unit of Euclidean step length (> 0).
// MaxExpansions – cells settled before giving up; 0 means N² (no cap).
type Options struct {
	StepWeight    float64
	MaxExpansions int
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns StepWeight=0.05 and no expansion cap.
func DefaultOptions() Options {
	return Options{StepWeight: DefaultStepWeight}
}

// WithStepWeight sets the distance term of the edge cost.
func WithStepWeight(w float64) Option {
	return func(o *Options) {
		o.StepWeight = w
	}
}

// WithMaxExpansions caps the number of settled cells.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// Result is an optimal path under the cost model.
type Result struct {
	Path     descent.Path // start..goal inclusive; consecutive cells are 8-neighbours
	Cost     float64      // accumulated edge cost of Path
	Expanded int          // cells settled
}
