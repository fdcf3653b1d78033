// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (transition count) from the start states.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: state → distance from the nearest start (-1 if unreached)
//   - Parent: state → its predecessor in the BFS tree (-1 for roots)
//   - Filtering of individual transitions via WithFilterTransition / WithSkipZeroWeight.
//   - Reverse walks via WithReverse (co-reachability).
//
// Why
//
//   - Trimming an automaton needs the states reachable from the start state
//     (forward) and the states that can reach an accepting state (reverse).
//
// Determinism
//
//	core.Graph returns transitions sorted by ID, and BFS enqueues neighbors
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (Q = |States|, T = |Transitions|)
//
//   - Time:   O(Q + T)
//   - Memory: O(Q)
//
// Usage
//
//	res, err := bfs.MultiSource(g, []int{0}, bfs.WithSkipZeroWeight())
//	coReach, err := bfs.Reachable(g, accepting, bfs.WithReverse())
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartStateNotFound   if a start state does not exist.
package bfs
