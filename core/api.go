// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing policy flags and stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Looped  bool // self-loops permitted
	Grouped bool // group tags permitted

	StateCount      int
	AcceptingCount  int // states with non-Zero end weight
	TransitionCount int
	EpsilonCount    int // transitions with nil label
	LoopCount       int // transitions with From == To
	TaggedCount     int // transitions with Group != 0
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph[L]) Looped() bool {
	g.muState.RLock()
	defer g.muState.RUnlock()

	return g.allowLoops
}

// Grouped reports whether non-zero group tags are permitted by policy.
// This is a policy flag, not whether any transition is currently tagged
// (use Stats().TaggedCount for that).
// Complexity: O(1).
func (g *Graph[L]) Grouped() bool {
	g.muState.RLock()
	defer g.muState.RUnlock()

	return g.allowGroups
}

// Stats produces a deterministic snapshot of flags and counts.
//
// The two phases take muState then muTrans, never both at once, so a
// concurrent writer may land between them.
// Complexity: O(Q+T).
func (g *Graph[L]) Stats() *GraphStats {
	g.muState.RLock()
	stats := GraphStats{
		Looped:     g.allowLoops,
		Grouped:    g.allowGroups,
		StateCount: len(g.states),
	}
	for _, s := range g.states {
		if !s.EndWeight.IsZero() {
			stats.AcceptingCount++
		}
	}
	g.muState.RUnlock()

	g.muTrans.RLock()
	stats.TransitionCount = len(g.transitions)
	for _, t := range g.transitions {
		if t.Label == nil {
			stats.EpsilonCount++
		}
		if t.From == t.To {
			stats.LoopCount++
		}
		if t.Group != 0 {
			stats.TaggedCount++
		}
	}
	g.muTrans.RUnlock()

	return &stats
}
