// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of states such that for
// every transition u→v, u appears before v in the ordering.
// If the graph contains a cycle (self-loops included), ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(Q + T) (each state and transition visited once)
//   - Memory: O(Q)     (recursion stack and state slice)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wlang/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[L any] struct {
	graph *core.Graph[L] // the graph being sorted
	state []int          // visitation state: White, Gray, Black
	order []int          // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all states in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
func TopologicalSort[L any](g *core.Graph[L]) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state
	n := g.StateCount()
	sorter := &topoSorter[L]{
		graph: g,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 3. Drive DFS from every unvisited state
	for q := range n {
		if sorter.state[q] == White {
			if err := sorter.visit(q); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from q, marking states and detecting cycles.
func (t *topoSorter[L]) visit(q int) error {
	// 1. Cycle detection: if already Gray, we found a back-edge
	if t.state[q] == Gray {
		return fmt.Errorf("%w: back-edge into state %d", ErrCycleDetected, q)
	}
	// 2. Already fully processed (Black)? then skip
	if t.state[q] == Black {
		return nil
	}
	// 3. Mark as in-progress (Gray)
	t.state[q] = Gray

	// 4. Explore each outgoing transition
	ts, err := t.graph.Outgoing(q)
	if err != nil {
		return fmt.Errorf("dfs: Outgoing(%d): %w", q, err)
	}
	for _, tr := range ts {
		if err = t.visit(tr.To); err != nil {
			return err
		}
	}

	// 5. Mark as fully explored (Black) and record in post-order
	t.state[q] = Black
	t.order = append(t.order, q)

	return nil
}
