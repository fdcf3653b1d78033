// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Costs are supplied per transition by the caller (for weighted automata,
// the negated log weight), so every path cost is a float64 sum.
//
// Complexity:
//
//	– Time:  O((Q + T) log Q)
//	– Space: O(Q + T) (lazy decrease-key)
//
// Options:
//
//	– Source:           index of the starting state (must be present in the graph).
//	– ReturnPath:       if true, return the predecessor transitions.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNilCost         if the cost function is nil.
//	– ErrStateNotFound   if the source state does not exist in the graph.
//	– ErrNegativeWeight  if a negative (or NaN) transition cost is detected.
package dijkstra

import (
	"errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrStateNotFound indicates that the specified source state does not exist
	// in the provided graph.
	ErrStateNotFound = errors.New("dijkstra: source state not found in graph")

	// ErrNegativeWeight indicates that a negative transition cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     – starting state index.
// ReturnPath – if true, return the predecessor transitions; otherwise prev is nil.
//
// Transitions of cost +Inf are never relaxed.
type Options struct {
	Source     int  // The index of the source state
	ReturnPath bool // Whether to return the predecessor transitions
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting state.
func Source(q int) Option {
	return func(o *Options) {
		o.Source = q
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source state.
//
// Defaults:
//   - ReturnPath: false
func DefaultOptions(source int) Options {
	return Options{
		Source:     source,
		ReturnPath: false,
	}
}
