// Package dfs defines types and options for depth-first search traversal,
// including transition filtering, full-graph (forest) traversal, and basic
// diagnostics.
package dfs

import (
	"errors"

	"github.com/katalvlaran/wlang/weight"
)

// Visitation states of a state during TopologicalSort.
const (
	White = iota // White: the state has not been visited yet.
	Gray         // Gray: the state is in the recursion stack (visiting).
	Black        // Black: the state and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, HasCycle or StronglyConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartStateNotFound indicates that the specified start state
	// does not exist in the graph.
	ErrStartStateNotFound = errors.New("dfs: start state not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(Q+T) when the filter is O(1).
type DFSOptions struct {
	// FilterTransition, if non-nil, is called for each outgoing transition.
	// Return true to traverse it, false to skip it.
	FilterTransition func(from, to int, w weight.Weight) bool

	// FullTraversal, if true, runs DFS from every unvisited state in the graph.
	FullTraversal bool

	// SkippedTransitions counts transitions rejected by FilterTransition.
	SkippedTransitions int
}

// DefaultOptions returns a DFSOptions struct with no transition filtering
// and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithFilterTransition returns an Option that filters outgoing transitions.
// If fn returns false, the transition is skipped and counted in SkippedTransitions.
func WithFilterTransition(fn func(from, to int, w weight.Weight) bool) Option {
	return func(o *DFSOptions) {
		o.FilterTransition = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records states in the sequence they finished (post-order).
	Order []int

	// Depth[q] is the discovery depth of q, -1 if unvisited.
	Depth []int

	// Parent[q] is the state from which q was first discovered, -1 for roots.
	Parent []int

	// Visited flags which states were reached during the traversal.
	Visited []bool

	// SkippedTransitions reports how many transitions were skipped
	// due to FilterTransition returning false.
	SkippedTransitions int
}
