package automaton

import (
	"sync"

	"github.com/katalvlaran/wlang/bfs"
	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/dfs"
	"github.com/katalvlaran/wlang/elemdist"
	"github.com/katalvlaran/wlang/seq"
	"github.com/katalvlaran/wlang/weight"
)

// Automaton is an immutable weighted finite-state automaton over sequences S
// made of elements E.
type Automaton[S any, E comparable] struct {
	manip seq.Manipulator[S, E]
	g     *core.Graph[elemdist.Discrete[E]]
	start int

	once sync.Once
	prep *prepared
}

// prepared holds structures derived lazily from the graph.
type prepared struct {
	// useful[q] reports whether q lies on some non-zero path from the start
	// state to an accepting state.
	useful []bool
	// eps sums epsilon paths between useful states.
	eps *closure
	// all sums every path between useful states, labels marginalized.
	all *closure
	// acyclic reports whether the useful part has no cycle.
	acyclic bool
}

func newAutomaton[S any, E comparable](manip seq.Manipulator[S, E], g *core.Graph[elemdist.Discrete[E]], start int) *Automaton[S, E] {
	return &Automaton[S, E]{manip: manip, g: g, start: start}
}

// prepare computes the useful states and the path-sum systems once.
func (a *Automaton[S, E]) prepare() *prepared {
	a.once.Do(func() {
		n := a.g.StateCount()
		p := &prepared{useful: make([]bool, n)}

		var accepting []int
		for _, s := range a.g.States() {
			if !s.EndWeight.IsZero() {
				accepting = append(accepting, s.Index)
			}
		}
		fwd, err1 := bfs.Reachable(a.g, []int{a.start}, bfs.WithSkipZeroWeight())
		back, err2 := bfs.Reachable(a.g, accepting, bfs.WithReverse(), bfs.WithSkipZeroWeight())
		if err1 == nil && err2 == nil {
			for q := range n {
				p.useful[q] = fwd[q] && back[q]
			}
		}

		var eps, all []arc
		for _, t := range a.usefulTransitions(p.useful) {
			if t.IsEpsilon() {
				eps = append(eps, arc{t.From, t.To, t.Weight})
				all = append(all, arc{t.From, t.To, t.Weight})
				continue
			}
			all = append(all, arc{t.From, t.To, t.Weight.Mul(t.Label.Mass())})
		}
		p.eps = newClosure(n, eps)
		p.all = newClosure(n, all)
		cyclic, err := dfs.HasCycle(p.all.g)
		p.acyclic = err == nil && !cyclic
		a.prep = p
	})

	return a.prep
}

// usefulTransitions returns the non-zero transitions between useful states.
func (a *Automaton[S, E]) usefulTransitions(useful []bool) []core.Transition[elemdist.Discrete[E]] {
	var out []core.Transition[elemdist.Discrete[E]]
	for _, t := range a.g.Transitions() {
		if useful[t.From] && useful[t.To] && !t.Weight.IsZero() {
			out = append(out, t)
		}
	}

	return out
}

// Manipulator returns the sequence manipulator of the automaton.
func (a *Automaton[S, E]) Manipulator() seq.Manipulator[S, E] { return a.manip }

// Start returns the index of the start state.
func (a *Automaton[S, E]) Start() int { return a.start }

// StateCount returns the number of states.
func (a *Automaton[S, E]) StateCount() int { return a.g.StateCount() }

// Stats returns a snapshot of the underlying graph counts.
func (a *Automaton[S, E]) Stats() *core.GraphStats { return a.g.Stats() }

// States returns a copy of every state.
func (a *Automaton[S, E]) States() []core.State { return a.g.States() }

// Transitions returns a copy of every transition.
func (a *Automaton[S, E]) Transitions() []core.Transition[elemdist.Discrete[E]] { return a.g.Transitions() }

// AsAutomaton returns the receiver.
func (a *Automaton[S, E]) AsAutomaton() *Automaton[S, E] { return a }

// UsesAutomatonRepresentation reports true.
func (a *Automaton[S, E]) UsesAutomatonRepresentation() bool { return true }

// UsesGroups reports whether any transition carries a non-zero group.
func (a *Automaton[S, E]) UsesGroups() bool { return a.g.Stats().TaggedCount > 0 }

// IsZero reports whether every sequence has weight zero.
func (a *Automaton[S, E]) IsZero() bool {
	return !a.prepare().useful[a.start]
}

// IsAcyclic reports whether the useful part of the automaton has no cycle,
// that is whether its support is finite.
func (a *Automaton[S, E]) IsAcyclic() bool { return a.prepare().acyclic }

// GetLogValue returns the log weight of s, -Inf when s is not accepted.
func (a *Automaton[S, E]) GetLogValue(s S) float64 {
	p := a.prepare()
	if !p.useful[a.start] {
		return weight.Zero.LogValue()
	}
	n := a.g.StateCount()
	cur := make([]weight.Weight, n)
	for q := range cur {
		cur[q] = weight.Zero
	}
	cur[a.start] = weight.One
	cur = p.eps.apply(cur)

	ts := a.usefulTransitions(p.useful)
	for _, e := range a.manip.Elements(s) {
		next := make([]weight.Weight, n)
		for q := range next {
			next[q] = weight.Zero
		}
		live := false
		for _, t := range ts {
			if t.IsEpsilon() || cur[t.From].IsZero() {
				continue
			}
			le := t.Label.Weight(e)
			if le.IsZero() {
				continue
			}
			next[t.To] = next[t.To].Add(cur[t.From].Mul(t.Weight).Mul(le))
			live = true
		}
		if !live {
			return weight.Zero.LogValue()
		}
		cur = p.eps.apply(next)
	}

	return a.endSum(cur, p.useful).LogValue()
}

// endSum returns Σ x[q]·end(q) over useful states.
func (a *Automaton[S, E]) endSum(x []weight.Weight, useful []bool) weight.Weight {
	total := weight.Zero
	for _, s := range a.g.States() {
		if useful[s.Index] && !x[s.Index].IsZero() {
			total = total.Add(x[s.Index].Mul(s.EndWeight))
		}
	}

	return total
}

// GetLogNormalizer returns the log of the total weight of all sequences:
// -Inf for the zero automaton, +Inf when the sum diverges.
func (a *Automaton[S, E]) GetLogNormalizer() float64 {
	p := a.prepare()
	if !p.useful[a.start] {
		return weight.Zero.LogValue()
	}
	init := make([]weight.Weight, a.g.StateCount())
	for q := range init {
		init[q] = weight.Zero
	}
	init[a.start] = weight.One

	return a.endSum(p.all.apply(init), p.useful).LogValue()
}

// TryNormalizeValues scales the automaton so that its weights sum to one.
// It returns the receiver and false when the normalizer is zero, infinite or
// NaN, and the receiver and true when it already sums to one.
func (a *Automaton[S, E]) TryNormalizeValues() (*Automaton[S, E], float64, bool) {
	logNorm := a.GetLogNormalizer()
	w := weight.FromLogValue(logNorm)
	switch {
	case w.IsNaN() || w.IsZero() || w.IsInfinity():
		return a, logNorm, false
	case w.IsOne():
		return a, logNorm, true
	}

	return a.ScaleLog(-logNorm), logNorm, true
}

// NormalizeStructure removes useless states and zero transitions. The
// receiver is returned when nothing can be removed.
func (a *Automaton[S, E]) NormalizeStructure() *Automaton[S, E] {
	p := a.prepare()
	if !p.useful[a.start] {
		if a.g.StateCount() == 1 && a.g.TransitionCount() == 0 {
			return a
		}
		return Zero(a.manip)
	}

	trim := false
	for _, u := range p.useful {
		trim = trim || !u
	}
	for _, t := range a.g.Transitions() {
		trim = trim || t.Weight.IsZero()
	}
	if !trim {
		return a
	}

	g, remap := core.Subgraph(a.g,
		func(s core.State) bool { return p.useful[s.Index] },
		func(t core.Transition[elemdist.Discrete[E]]) bool { return !t.Weight.IsZero() },
	)

	return newAutomaton(a.manip, g, remap[a.start])
}

// GetGroups returns, for every group id used by a transition, the automaton
// of the subsequences produced inside that group: transitions of other groups
// become epsilon transitions carrying their label mass.
func (a *Automaton[S, E]) GetGroups() map[int]*Automaton[S, E] {
	groups := make(map[int]*Automaton[S, E])
	for _, t := range a.g.Transitions() {
		if t.Group == 0 {
			continue
		}
		if _, done := groups[t.Group]; done {
			continue
		}
		group := t.Group
		b := NewBuilder(a.manip)
		off := b.embed(a, func(t core.Transition[elemdist.Discrete[E]]) (*elemdist.Discrete[E], weight.Weight, int) {
			if t.Group == group || t.IsEpsilon() {
				return t.Label, t.Weight, t.Group
			}
			return nil, t.Weight.Mul(t.Label.Mass()), t.Group
		})
		b.AddEpsilonTransition(b.Start(), a.start+off, weight.One, 0)
		groups[group] = b.mustAutomaton()
	}

	return groups
}

// HasGroup reports whether some transition carries the given non-zero group id.
func (a *Automaton[S, E]) HasGroup(group int) bool {
	for _, t := range a.g.Transitions() {
		if group != 0 && t.Group == group {
			return true
		}
	}

	return false
}
