// File: methods_states.go
// Role: State lifecycle & queries.
//
// Determinism:
//   - States() returns states in index order.
//
// Concurrency:
//   - State catalog protected by muState.
//   - Adjacency bootstrap under muTrans.

package core

import (
	"fmt"

	"github.com/katalvlaran/wlang/weight"
)

// AddState appends a non-accepting state and returns its index.
// Complexity: O(1) amortized.
func (g *Graph[L]) AddState() int {
	g.muState.Lock()
	defer g.muState.Unlock()

	idx := len(g.states)
	g.states = append(g.states, &State{Index: idx, EndWeight: weight.Zero})

	// Bootstrap adjacency buckets so transition methods can rely on len(out) == len(states).
	g.muTrans.Lock()
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.muTrans.Unlock()

	return idx
}

// AddStates appends n states and returns the index of the first one.
// Complexity: O(n).
func (g *Graph[L]) AddStates(n int) int {
	first := g.StateCount()
	for i := 0; i < n; i++ {
		g.AddState()
	}

	return first
}

// HasState reports whether q is a valid state index.
// Complexity: O(1).
func (g *Graph[L]) HasState(q int) bool {
	g.muState.RLock()
	defer g.muState.RUnlock()

	return q >= 0 && q < len(g.states)
}

// StateCount returns the number of states. O(1).
func (g *Graph[L]) StateCount() int {
	g.muState.RLock()
	defer g.muState.RUnlock()

	return len(g.states)
}

// SetEndWeight sets the accepting weight of q.
// Returns ErrStateNotFound or ErrBadWeight.
// Complexity: O(1).
func (g *Graph[L]) SetEndWeight(q int, w weight.Weight) error {
	if w.IsNaN() {
		return fmt.Errorf("%w: end weight of state %d", ErrBadWeight, q)
	}
	g.muState.Lock()
	defer g.muState.Unlock()

	if q < 0 || q >= len(g.states) {
		return fmt.Errorf("%w: %d", ErrStateNotFound, q)
	}
	g.states[q].EndWeight = w

	return nil
}

// EndWeight returns the accepting weight of q.
// Complexity: O(1).
func (g *Graph[L]) EndWeight(q int) (weight.Weight, error) {
	g.muState.RLock()
	defer g.muState.RUnlock()

	if q < 0 || q >= len(g.states) {
		return weight.Zero, fmt.Errorf("%w: %d", ErrStateNotFound, q)
	}

	return g.states[q].EndWeight, nil
}

// States returns a copy of every state in index order.
// Complexity: O(Q).
func (g *Graph[L]) States() []State {
	g.muState.RLock()
	defer g.muState.RUnlock()

	out := make([]State, len(g.states))
	for i, s := range g.states {
		out[i] = *s
	}

	return out
}
