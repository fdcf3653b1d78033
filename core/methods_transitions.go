// File: methods_transitions.go
// Role: Transition lifecycle & adjacency queries.
//
// Determinism:
//   - Outgoing/Incoming/Transitions return transitions in ascending ID order.
//
// Concurrency:
//   - State existence is checked under muState, then mutation happens under muTrans.

package core

import (
	"fmt"

	"github.com/katalvlaran/wlang/weight"
)

// AddTransition appends a transition from → to and returns its ID.
// A nil label makes an epsilon transition.
//
// Returns ErrStateNotFound, ErrBadWeight, ErrLoopNotAllowed,
// ErrNegativeGroup or ErrGroupNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[L]) AddTransition(from, to int, w weight.Weight, label *L, opts ...TransitionOption) (int, error) {
	// 1) Weight constraint
	if w.IsNaN() {
		return -1, fmt.Errorf("%w: transition %d→%d", ErrBadWeight, from, to)
	}
	// 2) Per-transition options
	var tc transitionConfig
	for _, opt := range opts {
		opt(&tc)
	}
	if tc.group < 0 {
		return -1, fmt.Errorf("%w: %d", ErrNegativeGroup, tc.group)
	}

	// 3) Policy and endpoint checks under the state lock
	g.muState.RLock()
	n := len(g.states)
	loops, groups := g.allowLoops, g.allowGroups
	g.muState.RUnlock()

	if from < 0 || from >= n {
		return -1, fmt.Errorf("%w: %d", ErrStateNotFound, from)
	}
	if to < 0 || to >= n {
		return -1, fmt.Errorf("%w: %d", ErrStateNotFound, to)
	}
	if from == to && !loops {
		return -1, fmt.Errorf("%w: state %d", ErrLoopNotAllowed, from)
	}
	if tc.group != 0 && !groups {
		return -1, fmt.Errorf("%w: group %d", ErrGroupNotAllowed, tc.group)
	}

	// 4) Store and index
	g.muTrans.Lock()
	defer g.muTrans.Unlock()

	id := len(g.transitions)
	g.transitions = append(g.transitions, &Transition[L]{
		ID:     id,
		From:   from,
		To:     to,
		Weight: w,
		Label:  label,
		Group:  tc.group,
	})
	g.out[from] = append(g.out[from], id)
	g.in[to] = append(g.in[to], id)

	return id, nil
}

// Transition returns a copy of the transition with the given ID.
// Complexity: O(1).
func (g *Graph[L]) Transition(id int) (Transition[L], error) {
	g.muTrans.RLock()
	defer g.muTrans.RUnlock()

	if id < 0 || id >= len(g.transitions) {
		return Transition[L]{}, fmt.Errorf("%w: %d", ErrTransitionNotFound, id)
	}

	return *g.transitions[id], nil
}

// TransitionCount returns the number of transitions. O(1).
func (g *Graph[L]) TransitionCount() int {
	g.muTrans.RLock()
	defer g.muTrans.RUnlock()

	return len(g.transitions)
}

// Transitions returns a copy of every transition in ID order.
// Complexity: O(T).
func (g *Graph[L]) Transitions() []Transition[L] {
	g.muTrans.RLock()
	defer g.muTrans.RUnlock()

	out := make([]Transition[L], len(g.transitions))
	for i, t := range g.transitions {
		out[i] = *t
	}

	return out
}

// Outgoing returns the transitions leaving q in ID order.
// Complexity: O(out(q)).
func (g *Graph[L]) Outgoing(q int) ([]Transition[L], error) {
	if !g.HasState(q) {
		return nil, fmt.Errorf("%w: %d", ErrStateNotFound, q)
	}
	g.muTrans.RLock()
	defer g.muTrans.RUnlock()

	return g.collect(g.out[q]), nil
}

// Incoming returns the transitions entering q in ID order.
// Complexity: O(in(q)).
func (g *Graph[L]) Incoming(q int) ([]Transition[L], error) {
	if !g.HasState(q) {
		return nil, fmt.Errorf("%w: %d", ErrStateNotFound, q)
	}
	g.muTrans.RLock()
	defer g.muTrans.RUnlock()

	return g.collect(g.in[q]), nil
}

// collect copies the transitions listed in ids. Caller holds muTrans.
func (g *Graph[L]) collect(ids []int) []Transition[L] {
	out := make([]Transition[L], len(ids))
	for i, id := range ids {
		out[i] = *g.transitions[id]
	}

	return out
}
