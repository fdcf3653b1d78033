// Package dfs implements depth-first search (single-source and forest) on core.Graph.
// It supports transition filtering, full-graph traversal, and diagnostics.
//
// Complexity:
//
//   - Time:   O(Q + T) for traversal, plus the cost of the filter.
//   - Memory: O(Q) for recursion stack and metadata.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartStateNotFound     if start is missing.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wlang/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[L any] struct {
	graph *core.Graph[L] // underlying graph
	opts  DFSOptions     // traversal options
	res   *DFSResult     // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all states; otherwise, it starts only from start.
func DFS[L any](g *core.Graph[L], start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasState(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartStateNotFound, start)
	}

	// 4. Initialize result
	n := g.StateCount()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := range n {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	walker := &dfsWalker[L]{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for q := range n {
			if !res.Visited[q] {
				if err := walker.traverse(q, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedTransitions = walker.opts.SkippedTransitions

	return res, nil
}

// traverse visits state q at given depth, recursing to successors.
func (w *dfsWalker[L]) traverse(q int, depth int) error {
	// 1. Mark visited and record depth
	w.res.Visited[q] = true
	w.res.Depth[q] = depth

	// 2. Fetch transitions once
	ts, err := w.graph.Outgoing(q)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Outgoing(%d): %w", q, err)
	}

	// 3. Explore each transition
	for _, t := range ts {
		if w.opts.FilterTransition != nil && !w.opts.FilterTransition(t.From, t.To, t.Weight) {
			w.opts.SkippedTransitions++
			continue
		}
		if !w.res.Visited[t.To] {
			w.res.Parent[t.To] = q
			if err = w.traverse(t.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Record finish order
	w.res.Order = append(w.res.Order, q)

	return nil
}
