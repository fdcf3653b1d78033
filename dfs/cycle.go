// Package dfs implements cycle and component analysis for core.Graph.
// HasCycle answers through TopologicalSort. StronglyConnected runs
// Kosaraju's two passes on top of DFS: a forest traversal for finish order,
// then single-source walks over the reversed graph.
//
// Complexity:
//
//   - HasCycle:          O(Q + T)
//   - StronglyConnected: O(C·(Q + T)), C = number of components
package dfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/weight"
)

// HasCycle reports whether g contains any directed cycle, self-loops included.
func HasCycle[L any](g *core.Graph[L]) (bool, error) {
	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}

// StronglyConnected partitions the states of g into strongly connected
// components. Each component is sorted ascending; components come in
// topological order of the condensation, sources first.
func StronglyConnected[L any](g *core.Graph[L]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1) Finish order over the whole graph
	fwd, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, fmt.Errorf("dfs: StronglyConnected: %w", err)
	}

	// 2) Reversed copy; loops are preserved by CloneEmpty's config
	rev := g.CloneEmpty()
	for _, t := range g.Transitions() {
		if _, err = rev.AddTransition(t.To, t.From, t.Weight, nil); err != nil {
			return nil, fmt.Errorf("dfs: StronglyConnected: %w", err)
		}
	}

	// 3) Walk the reversed graph in decreasing finish time
	comp := make([]int, g.StateCount())
	for i := range comp {
		comp[i] = -1
	}
	unassigned := func(_, to int, _ weight.Weight) bool { return comp[to] < 0 }

	var out [][]int
	for i := len(fwd.Order) - 1; i >= 0; i-- {
		root := fwd.Order[i]
		if comp[root] >= 0 {
			continue
		}
		res, err := DFS(rev, root, WithFilterTransition(unassigned))
		if err != nil {
			return nil, fmt.Errorf("dfs: StronglyConnected: %w", err)
		}
		var members []int
		for q, seen := range res.Visited {
			if seen {
				comp[q] = len(out)
				members = append(members, q)
			}
		}
		slices.Sort(members)
		out = append(out, members)
	}

	return out, nil
}
