package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/potfield/descent"
	"github.com/katalvlaran/potfield/field"
)

// ShortestPath computes a minimum-cost path from start to goal.
//
// Preconditions (in order):
//  1. g non-nil (field.ErrNilGrid).
//  2. start and goal in bounds (field.ErrOutOfRange).
//  3. StepWeight > 0 and finite (ErrBadStepWeight).
//  4. MaxExpansions >= 0 (ErrBadMaxExpansions).
//
// Every cell of a Grid is passable, so the only failure after validation is
// ErrNoPath from an explicit expansion cap.
func ShortestPath(g *field.Grid, start, goal field.Coord, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, field.ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("route: start %s: %w", start, field.ErrOutOfRange)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("route: goal %s: %w", goal, field.ErrOutOfRange)
	}
	if !(cfg.StepWeight > 0) || math.IsInf(cfg.StepWeight, 0) {
		return nil, ErrBadStepWeight
	}
	if cfg.MaxExpansions < 0 {
		return nil, ErrBadMaxExpansions
	}

	n := g.Size()
	r := &runner{
		g:       g,
		n:       n,
		goal:    goal,
		weight:  cfg.StepWeight,
		floor:   g.Stats().Min,
		budget:  cfg.MaxExpansions,
		dist:    make([]float64, n*n),
		prev:    make([]int, n*n),
		settled: make([]bool, n*n),
	}
	if r.budget == 0 {
		r.budget = n * n
	}

	return r.run(start)
}

// runner holds the mutable state of one ShortestPath call.
type runner struct {
	g       *field.Grid
	n       int
	goal    field.Coord
	weight  float64
	floor   float64
	budget  int
	dist    []float64
	prev    []int
	settled []bool
	pq      nodePQ
	seq     int
}

func (r *runner) index(c field.Coord) int { return c.Row*r.n + c.Col }

func (r *runner) coord(i int) field.Coord { return field.Coord{Row: i / r.n, Col: i % r.n} }

// heuristic is StepWeight times the straight-line distance to the goal.
func (r *runner) heuristic(c field.Coord) float64 {
	dr := float64(c.Row - r.goal.Row)
	dc := float64(c.Col - r.goal.Col)
	return r.weight * math.Hypot(dr, dc)
}

// run is the A* main loop with lazy decrease-key: stale heap entries are
// skipped when popped.
func (r *runner) run(start field.Coord) (*Result, error) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	s := r.index(start)
	r.dist[s] = 0
	r.push(s, 0)

	target := r.index(r.goal)
	expanded := 0
	buf := make([]field.Coord, 0, 8)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		if r.settled[u] {
			continue
		}
		r.settled[u] = true
		expanded++
		if u == target {
			return &Result{Path: r.path(target), Cost: r.dist[target], Expanded: expanded}, nil
		}
		if expanded >= r.budget {
			break
		}
		r.relax(u, buf[:0])
	}

	return nil, fmt.Errorf("%w: %d cells expanded", ErrNoPath, expanded)
}

// relax tries to improve every unsettled neighbour of u.
func (r *runner) relax(u int, buf []field.Coord) {
	uc := r.coord(u)
	for _, vc := range r.g.InBoundsNeighbors(uc, buf) {
		v := r.index(vc)
		if r.settled[v] {
			continue
		}
		step := 1.0
		if vc.Row != uc.Row && vc.Col != uc.Col {
			step = math.Sqrt2
		}
		nd := r.dist[u] + (r.g.At(vc) - r.floor) + r.weight*step
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}

func (r *runner) push(i int, g float64) {
	h := r.heuristic(r.coord(i))
	r.seq++
	heap.Push(&r.pq, &nodeItem{idx: i, f: g + h, h: h, seq: r.seq})
}

// path walks predecessors back from target.
func (r *runner) path(target int) descent.Path {
	var rev []field.Coord
	for at := target; at >= 0; at = r.prev[at] {
		rev = append(rev, r.coord(at))
	}
	out := make(descent.Path, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}

	return out
}

// nodeItem is a heap entry ordered by f = g + h, then by smaller h, then by
// insertion order, so equal-cost runs are deterministic.
type nodeItem struct {
	idx int
	f   float64
	h   float64
	seq int
}

// nodePQ is a min-heap of *nodeItem.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
