// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph
// with caller-supplied, non-negative transition costs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all transitions (O(T)) to detect negative costs and fail fast.
//   - We treat any transition with cost +Inf as an impassable "wall".
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wlang/core"
)

// CostFunc returns the non-negative cost of traversing a transition.
type CostFunc[L any] func(t core.Transition[L]) float64

// Dijkstra computes shortest distances from the source state (Options.Source)
// to all other states of g under cost.
//
// Returns:
//
//   - dist: dist[q] is the minimum distance to q (+Inf if unreachable).
//   - prev: if ReturnPath, prev[q] is the ID of the last transition on the
//     shortest path to q (-1 for the source and unreachable states); nil otherwise.
//   - err:  error if inputs are invalid or if a negative cost is detected.
func Dijkstra[L any](g *core.Graph[L], cost CostFunc[L], opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cost == nil {
		return nil, nil, ErrNilCost
	}
	if !g.HasState(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrStateNotFound, cfg.Source)
	}

	// 3) Pre-scan all transitions to compute costs and detect negative ones.
	ts := g.Transitions()
	costs := make([]float64, len(ts))
	for _, t := range ts {
		c := cost(t)
		if c < 0 || math.IsNaN(c) {
			return nil, nil, fmt.Errorf("%w: transition %d→%d cost=%g", ErrNegativeWeight, t.From, t.To, c)
		}
		costs[t.ID] = c
	}

	// 4) Prepare data structures and run.
	n := g.StateCount()
	r := &runner[L]{
		g:       g,
		options: cfg,
		costs:   costs,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo walks prev back from dest and returns the transition IDs of the
// shortest path in source → dest order. An empty path means dest is the source.
func PathTo[L any](g *core.Graph[L], prev []int, dest int) ([]int, error) {
	if dest < 0 || dest >= len(prev) {
		return nil, fmt.Errorf("%w: %d", ErrStateNotFound, dest)
	}
	var path []int
	for q := dest; prev[q] >= 0; {
		t, err := g.Transition(prev[q])
		if err != nil {
			return nil, err
		}
		path = append(path, t.ID)
		q = t.From
		if len(path) > len(prev) {
			return nil, fmt.Errorf("dijkstra: predecessor cycle at state %d", q)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[L any] struct {
	g       *core.Graph[L] // The input graph; read-only within Dijkstra.
	options Options        // Configuration options (Source, ReturnPath).
	costs   []float64      // costs[id] is the cost of transition id.
	dist    []float64      // current best distance from Source.
	prev    []int          // last transition on the best path.
	visited []bool         // whether a state's distance is finalized.
	pq      nodePQ         // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and pushes Source=0 into the heap.
func (r *runner[L]) init() {
	for q := range r.dist {
		r.dist[q] = math.Inf(1)
		r.prev[q] = -1
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{q: r.options.Source, dist: 0})
}

// process repeatedly extracts the state with the minimum distance from the
// source and relaxes its outgoing transitions.
func (r *runner[L]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries.
		if r.visited[item.q] {
			continue
		}
		r.visited[item.q] = true

		if err := r.relax(item.q); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each transition leaving u and attempts to improve distances
// to its targets.
func (r *runner[L]) relax(u int) error {
	ts, err := r.g.Outgoing(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get transitions of %d: %w", u, err)
	}

	for _, t := range ts {
		w := r.costs[t.ID]
		if math.IsInf(w, 1) {
			continue
		}

		newDist := r.dist[u] + w
		// Strict improvement only; ties keep the earliest transition ID.
		if newDist >= r.dist[t.To] {
			continue
		}

		r.dist[t.To] = newDist
		r.prev[t.To] = t.ID
		heap.Push(&r.pq, &nodeItem{q: t.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a state and its current distance from the source.
type nodeItem struct {
	q    int     // state index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by state index.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].q < pq[j].q
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
