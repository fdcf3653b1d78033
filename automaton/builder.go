package automaton

import (
	"fmt"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/elemdist"
	"github.com/katalvlaran/wlang/seq"
	"github.com/katalvlaran/wlang/weight"
)

// Builder assembles an Automaton state by state. The first failing call is
// remembered; later calls become no-ops and GetAutomaton returns that error.
type Builder[S any, E comparable] struct {
	manip seq.Manipulator[S, E]
	g     *core.Graph[elemdist.Discrete[E]]
	start int
	err   error
}

// NewBuilder returns a builder holding a single non-accepting start state.
// Loops and groups are always enabled; opts may add e.g. core.WithStateCapacity.
func NewBuilder[S any, E comparable](manip seq.Manipulator[S, E], opts ...core.GraphOption) *Builder[S, E] {
	opts = append([]core.GraphOption{core.WithLoops(), core.WithGroups()}, opts...)
	g := core.NewGraph[elemdist.Discrete[E]](opts...)

	return &Builder[S, E]{manip: manip, g: g, start: g.AddState()}
}

// Start returns the index of the start state.
func (b *Builder[S, E]) Start() int { return b.start }

// Err returns the first error recorded by the builder.
func (b *Builder[S, E]) Err() error { return b.err }

// AddState adds a non-accepting state and returns its index, or -1 after an error.
func (b *Builder[S, E]) AddState() int {
	if b.err != nil {
		return -1
	}

	return b.g.AddState()
}

// AddTransition adds a transition consuming one element drawn from label.
// An all-zero label makes the transition weight Zero.
func (b *Builder[S, E]) AddTransition(from, to int, label elemdist.Discrete[E], w weight.Weight, group int) int {
	if label.IsZero() {
		w = weight.Zero
	}

	return b.add(from, to, &label, w, group)
}

// AddEpsilonTransition adds a transition that consumes no element.
func (b *Builder[S, E]) AddEpsilonTransition(from, to int, w weight.Weight, group int) int {
	return b.add(from, to, nil, w, group)
}

// AddTransitionsForSequence threads a chain of point-mass transitions
// spelling s from state from, and returns the last state of the chain.
func (b *Builder[S, E]) AddTransitionsForSequence(from int, s S, group int) int {
	cur := from
	for _, e := range b.manip.Elements(s) {
		next := b.AddState()
		b.AddTransition(cur, next, elemdist.PointMass(e), weight.One, group)
		cur = next
	}

	return cur
}

// SetEndWeight sets the end weight of q.
func (b *Builder[S, E]) SetEndWeight(q int, w weight.Weight) {
	if b.err != nil {
		return
	}
	if err := b.g.SetEndWeight(q, w); err != nil {
		b.err = fmt.Errorf("automaton: set end weight: %w", err)
	}
}

// GetAutomaton finishes construction. The builder cannot be used afterwards.
func (b *Builder[S, E]) GetAutomaton() (*Automaton[S, E], error) {
	if b.err != nil {
		return nil, b.err
	}
	a := newAutomaton(b.manip, b.g, b.start)
	b.g = nil
	b.err = ErrBuilderUsed

	return a, nil
}

// mustAutomaton is GetAutomaton for internal constructions whose inputs are
// already valid automata.
func (b *Builder[S, E]) mustAutomaton() *Automaton[S, E] {
	a, err := b.GetAutomaton()
	if err != nil {
		panic(err)
	}

	return a
}

func (b *Builder[S, E]) add(from, to int, label *elemdist.Discrete[E], w weight.Weight, group int) int {
	if b.err != nil {
		return -1
	}
	id, err := b.g.AddTransition(from, to, w, label, core.WithGroup(group))
	if err != nil {
		b.err = fmt.Errorf("automaton: add transition: %w", err)
		return -1
	}

	return id
}

// transform rewrites a transition while it is copied by embed.
type transform[E comparable] func(t core.Transition[elemdist.Discrete[E]]) (label *elemdist.Discrete[E], w weight.Weight, group int)

// embed copies every state and transition of a into the builder and returns
// the offset of a's states: state q of a becomes q+offset. End weights are
// copied. A nil fn copies transitions unchanged.
func (b *Builder[S, E]) embed(a *Automaton[S, E], fn transform[E]) int {
	if b.err != nil {
		return 0
	}
	states := a.g.States()
	off := b.g.AddStates(len(states))
	for _, s := range states {
		b.SetEndWeight(s.Index+off, s.EndWeight)
	}
	for _, t := range a.g.Transitions() {
		label, w, group := t.Label, t.Weight, t.Group
		if fn != nil {
			label, w, group = fn(t)
		}
		b.add(t.From+off, t.To+off, label, w, group)
	}

	return off
}

// Zero returns the automaton assigning weight zero to every sequence.
func Zero[S any, E comparable](manip seq.Manipulator[S, E]) *Automaton[S, E] {
	return NewBuilder(manip).mustAutomaton()
}

// FromPoint returns the automaton giving weight One to s and zero elsewhere.
func FromPoint[S any, E comparable](manip seq.Manipulator[S, E], s S) *Automaton[S, E] {
	b := NewBuilder(manip)
	last := b.AddTransitionsForSequence(b.Start(), s, 0)
	b.SetEndWeight(last, weight.One)

	return b.mustAutomaton()
}

// Epsilon returns the automaton giving weight One to the empty sequence only.
func Epsilon[S any, E comparable](manip seq.Manipulator[S, E]) *Automaton[S, E] {
	b := NewBuilder(manip)
	b.SetEndWeight(b.Start(), weight.One)

	return b.mustAutomaton()
}
