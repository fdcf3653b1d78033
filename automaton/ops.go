package automaton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/elemdist"
	"github.com/katalvlaran/wlang/weight"
)

// ScaleLog multiplies every weight by exp(logScale). Every accepted path
// carries exactly one end weight, so only end weights of a copy are scaled.
func (a *Automaton[S, E]) ScaleLog(logScale float64) *Automaton[S, E] {
	if logScale == 0 {
		return a
	}
	scale := weight.FromLogValue(logScale)
	g := a.g.Clone()
	for _, st := range g.States() {
		if st.EndWeight.IsZero() {
			continue
		}
		if err := g.SetEndWeight(st.Index, st.EndWeight.Mul(scale)); err != nil {
			panic(fmt.Errorf("automaton: scale: %w", err))
		}
	}

	return newAutomaton(a.manip, g, a.start)
}

// Sum returns the automaton whose weights are the sums of both operands'.
func (a *Automaton[S, E]) Sum(other *Automaton[S, E]) *Automaton[S, E] {
	return a.SumLog(0, 0, other)
}

// SumWeighted returns w1·a + w2·other. Negative weights are rejected.
func (a *Automaton[S, E]) SumWeighted(w1, w2 float64, other *Automaton[S, E]) (*Automaton[S, E], error) {
	if w1 < 0 || w2 < 0 {
		return nil, fmt.Errorf("%w: %g, %g", ErrNegativeMixtureWeight, w1, w2)
	}

	return a.SumLog(math.Log(w1), math.Log(w2), other), nil
}

// SumLog returns exp(logW1)·a + exp(logW2)·other.
func (a *Automaton[S, E]) SumLog(logW1, logW2 float64, other *Automaton[S, E]) *Automaton[S, E] {
	b := NewBuilder(a.manip)
	offA := b.embed(a, nil)
	offB := b.embed(other, nil)
	b.AddEpsilonTransition(b.Start(), a.start+offA, weight.FromLogValue(logW1), 0)
	b.AddEpsilonTransition(b.Start(), other.start+offB, weight.FromLogValue(logW2), 0)

	return b.mustAutomaton()
}

// Append returns the concatenation a·other: the weight of xy is the sum over
// splits of a(x)·other(y). A non-zero group tags every transition of the
// appended part.
func (a *Automaton[S, E]) Append(other *Automaton[S, E], group int) (*Automaton[S, E], error) {
	b := NewBuilder(a.manip)
	offA := b.embed(a, nil)
	var retag transform[E]
	if group != 0 {
		retag = func(t core.Transition[elemdist.Discrete[E]]) (*elemdist.Discrete[E], weight.Weight, int) {
			return t.Label, t.Weight, group
		}
	}
	offB := b.embed(other, retag)
	b.AddEpsilonTransition(b.Start(), a.start+offA, weight.One, 0)
	for _, s := range a.g.States() {
		if s.EndWeight.IsZero() {
			continue
		}
		b.AddEpsilonTransition(s.Index+offA, other.start+offB, s.EndWeight, 0)
		b.SetEndWeight(s.Index+offA, weight.Zero)
	}

	return b.GetAutomaton()
}

// AppendSequence appends the fixed sequence s to every sequence of a.
func (a *Automaton[S, E]) AppendSequence(s S, group int) (*Automaton[S, E], error) {
	return a.Append(FromPoint(a.manip, s), group)
}

// Repeat returns the sum of a^k for minTimes ≤ k ≤ maxTimes. A negative
// maxTimes means no upper bound (a^minTimes followed by the Kleene star).
func (a *Automaton[S, E]) Repeat(minTimes, maxTimes int) (*Automaton[S, E], error) {
	if minTimes < 0 || (maxTimes >= 0 && maxTimes < minTimes) {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrInvalidRepeat, minTimes, maxTimes)
	}

	var err error
	prefix := Epsilon(a.manip)
	for range minTimes {
		if prefix, err = prefix.Append(a, 0); err != nil {
			return nil, err
		}
	}
	if maxTimes < 0 {
		return prefix.Append(a.star(), 0)
	}

	// tail = 1 + a(1 + a(1 + …)), maxTimes-minTimes levels deep.
	tail := Epsilon(a.manip)
	for range maxTimes - minTimes {
		next, err := a.Append(tail, 0)
		if err != nil {
			return nil, err
		}
		tail = Epsilon(a.manip).Sum(next)
	}

	return prefix.Append(tail, 0)
}

// star returns the Kleene closure Σ_k a^k.
func (a *Automaton[S, E]) star() *Automaton[S, E] {
	b := NewBuilder(a.manip)
	hub := b.Start()
	b.SetEndWeight(hub, weight.One)
	off := b.embed(a, nil)
	b.AddEpsilonTransition(hub, a.start+off, weight.One, 0)
	for _, s := range a.g.States() {
		if s.EndWeight.IsZero() {
			continue
		}
		b.AddEpsilonTransition(s.Index+off, hub, s.EndWeight, 0)
		b.SetEndWeight(s.Index+off, weight.Zero)
	}

	return b.mustAutomaton()
}

// productKey identifies a state of the product construction: a state of each
// operand and the epsilon filter state.
type productKey struct {
	p, q int
	// f is 0 when the left operand may still take epsilon moves, 1 once the
	// right operand has moved on epsilon since the last consumed element.
	f int
}

// Product returns the automaton whose weight of every sequence is the product
// of both operands' weights.
//
// Epsilon moves are sequenced so that every pair of paths is counted once:
// between two consumed elements the left operand's epsilon moves come first.
func (a *Automaton[S, E]) Product(other *Automaton[S, E]) *Automaton[S, E] {
	b := NewBuilder(a.manip)
	index := make(map[productKey]int)
	var queue []productKey
	visit := func(k productKey) int {
		if s, ok := index[k]; ok {
			return s
		}
		s := b.Start()
		if len(index) > 0 {
			s = b.AddState()
		}
		index[k] = s
		queue = append(queue, k)

		return s
	}
	visit(productKey{a.start, other.start, 0})

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		s := index[k]

		ea, _ := a.g.EndWeight(k.p)
		eb, _ := other.g.EndWeight(k.q)
		b.SetEndWeight(s, ea.Mul(eb))

		outA, _ := a.g.Outgoing(k.p)
		outB, _ := other.g.Outgoing(k.q)
		for _, ta := range outA {
			if ta.Weight.IsZero() {
				continue
			}
			if ta.IsEpsilon() {
				if k.f == 0 {
					b.AddEpsilonTransition(s, visit(productKey{ta.To, k.q, 0}), ta.Weight, ta.Group)
				}
				continue
			}
			for _, tb := range outB {
				if tb.IsEpsilon() || tb.Weight.IsZero() {
					continue
				}
				lab := ta.Label.Product(*tb.Label)
				if lab.IsZero() {
					continue
				}
				group := ta.Group
				if group == 0 {
					group = tb.Group
				}
				b.AddTransition(s, visit(productKey{ta.To, tb.To, 0}), lab, ta.Weight.Mul(tb.Weight), group)
			}
		}
		for _, tb := range outB {
			if tb.IsEpsilon() && !tb.Weight.IsZero() {
				b.AddEpsilonTransition(s, visit(productKey{k.p, tb.To, 1}), tb.Weight, tb.Group)
			}
		}
	}

	return b.mustAutomaton().NormalizeStructure()
}
