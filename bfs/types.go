// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"

	"github.com/katalvlaran/wlang/weight"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartStateNotFound is returned when a start index is absent.
	ErrStartStateNotFound = errors.New("bfs: start state not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Reverse walks transitions backwards (To → From).
	Reverse bool

	// FilterTransition can skip transitions by returning false.
	// from/to are given in the direction of the walk.
	FilterTransition func(from, to int, w weight.Weight) bool
}

// DefaultOptions returns a BFSOptions that walks forward and follows
// every transition.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		FilterTransition: func(int, int, weight.Weight) bool { return true },
	}
}

// WithReverse walks transitions against their direction, which yields
// the set of states that can reach the start states.
func WithReverse() Option {
	return func(o *BFSOptions) { o.Reverse = true }
}

// WithFilterTransition skips transitions when fn returns false.
func WithFilterTransition(fn func(from, to int, w weight.Weight) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterTransition = fn
		}
	}
}

// WithSkipZeroWeight skips transitions whose weight is Zero.
func WithSkipZeroWeight() Option {
	return WithFilterTransition(func(_, _ int, w weight.Weight) bool { return !w.IsZero() })
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: Depth[q] is the distance (in transitions) from the nearest start, -1 if unreached.
//   - Parent: Parent[q] is the predecessor of q in the BFS tree, -1 for starts and unreached states.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}
