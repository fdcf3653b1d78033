// Package core defines the State, Transition and Graph types of an automaton
// state graph, the option types, the sentinel errors and the NewGraph
// constructor.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/wlang/weight"
)

// Sentinel errors for core graph operations.
var (
	// ErrStateNotFound indicates an operation referenced a non-existent state.
	ErrStateNotFound = errors.New("core: state not found")

	// ErrTransitionNotFound indicates an operation referenced a non-existent transition.
	ErrTransitionNotFound = errors.New("core: transition not found")

	// ErrBadWeight indicates a NaN weight.
	ErrBadWeight = errors.New("core: weight is NaN")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrGroupNotAllowed indicates a group tag was attempted when groups are disabled.
	ErrGroupNotAllowed = errors.New("core: group tags not allowed")

	// ErrNegativeGroup indicates a negative group id.
	ErrNegativeGroup = errors.New("core: group id is negative")
)

// State is a node of the automaton graph.
type State struct {
	// Index is the dense identifier of the state.
	Index int

	// EndWeight is the weight of stopping in this state; Zero for non-accepting states.
	EndWeight weight.Weight
}

// Transition is a weighted, optionally labeled arc between two states.
type Transition[L any] struct {
	// ID is the dense identifier of the transition (insertion order).
	ID int

	// From is the source state index.
	From int

	// To is the destination state index.
	To int

	// Weight multiplies the weight of every path using this transition.
	Weight weight.Weight

	// Label is the element weight function consumed by this transition; nil for epsilon.
	Label *L

	// Group tags the transition; 0 means untagged.
	Group int
}

// IsEpsilon reports whether the transition consumes no element.
func (t Transition[L]) IsEpsilon() bool { return t.Label == nil }

// config collects construction-time flags. It is not generic so that the
// same options can configure graphs of any label type.
type config struct {
	allowLoops  bool
	allowGroups bool
	capacity    int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *config)

// WithLoops permits self-loops (transitions from a state to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// WithGroups permits non-zero group tags on transitions.
func WithGroups() GraphOption {
	return func(c *config) { c.allowGroups = true }
}

// WithStateCapacity preallocates room for n states.
func WithStateCapacity(n int) GraphOption {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// TransitionOption configures properties of individual transitions when added.
type TransitionOption func(*transitionConfig)

type transitionConfig struct {
	group int
}

// WithGroup tags the transition with a group id.
func WithGroup(group int) TransitionOption {
	return func(tc *transitionConfig) { tc.group = group }
}

// Graph is the automaton state graph.
//
// muState protects states; muTrans protects transitions, out and in.
type Graph[L any] struct {
	muState sync.RWMutex // guards states
	muTrans sync.RWMutex // guards transitions and adjacency

	// Configuration flags
	allowLoops  bool // allow self-loops
	allowGroups bool // allow group tags

	// Storage
	states      []*State
	transitions []*Transition[L] // transitions[id].ID == id

	// out[q] / in[q] hold transition IDs in ascending order.
	out [][]int
	in  [][]int
}

// NewGraph creates an empty Graph. By default loops and groups are disallowed.
// Complexity: O(1)
func NewGraph[L any](opts ...GraphOption) *Graph[L] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return newGraphFromConfig[L](c)
}

func newGraphFromConfig[L any](c config) *Graph[L] {
	return &Graph[L]{
		allowLoops:  c.allowLoops,
		allowGroups: c.allowGroups,
		states:      make([]*State, 0, c.capacity),
		out:         make([][]int, 0, c.capacity),
		in:          make([][]int, 0, c.capacity),
	}
}
