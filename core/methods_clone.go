// File: methods_clone.go
// Role: Deep copies of a Graph.
//
// Concurrency:
//   - Read locks on the source; the result is a fresh, unshared graph.

package core

// CloneEmpty returns a new Graph with identical configuration and states
// (including end weights) but no transitions.
// Complexity: O(Q)
func (g *Graph[L]) CloneEmpty() *Graph[L] {
	g.muState.RLock()
	defer g.muState.RUnlock()

	clone := newGraphFromConfig[L](config{
		allowLoops:  g.allowLoops,
		allowGroups: g.allowGroups,
		capacity:    len(g.states),
	})
	for _, s := range g.states {
		clone.states = append(clone.states, &State{Index: s.Index, EndWeight: s.EndWeight})
		clone.out = append(clone.out, nil)
		clone.in = append(clone.in, nil)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, states and transitions.
// Labels are shared, they are treated as immutable values.
// Complexity: O(Q + T)
func (g *Graph[L]) Clone() *Graph[L] {
	clone := g.CloneEmpty()

	g.muTrans.RLock()
	defer g.muTrans.RUnlock()

	clone.transitions = make([]*Transition[L], len(g.transitions))
	for i, t := range g.transitions {
		nt := *t
		clone.transitions[i] = &nt
	}
	for q := range clone.out {
		if q < len(g.out) {
			clone.out[q] = append([]int(nil), g.out[q]...)
			clone.in[q] = append([]int(nil), g.in[q]...)
		}
	}

	return clone
}
