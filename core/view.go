// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Kept states are renumbered densely in ascending original order.
//   - Kept transitions are re-added in ascending original ID order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// Subgraph returns the graph induced by the states for which keepState
// returns true, restricted to the transitions for which keepTransition
// returns true (nil keeps all). Transitions touching a dropped state are
// always dropped. The input graph is not mutated.
//
// The second result maps each original state index to its new index, or -1
// when the state was dropped.
//
// Complexity: O(Q + T).
func Subgraph[L any](g *Graph[L], keepState func(State) bool, keepTransition func(Transition[L]) bool) (*Graph[L], []int) {
	states := g.States()
	out := newGraphFromConfig[L](config{
		allowLoops:  g.Looped(),
		allowGroups: g.Grouped(),
	})

	remap := make([]int, len(states))
	for _, s := range states {
		if keepState != nil && !keepState(s) {
			remap[s.Index] = -1
			continue
		}
		idx := len(out.states)
		remap[s.Index] = idx
		out.states = append(out.states, &State{Index: idx, EndWeight: s.EndWeight})
		out.out = append(out.out, nil)
		out.in = append(out.in, nil)
	}

	for _, t := range g.Transitions() {
		from, to := remap[t.From], remap[t.To]
		if from < 0 || to < 0 {
			continue
		}
		if keepTransition != nil && !keepTransition(t) {
			continue
		}
		id := len(out.transitions)
		out.transitions = append(out.transitions, &Transition[L]{
			ID:     id,
			From:   from,
			To:     to,
			Weight: t.Weight,
			Label:  t.Label,
			Group:  t.Group,
		})
		out.out[from] = append(out.out[from], id)
		out.in[to] = append(out.in[to], id)
	}

	return out, remap
}
