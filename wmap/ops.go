package wmap

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/wlang/automaton"
	"github.com/katalvlaran/wlang/weight"
)

// scaled yields the entries of m with every weight multiplied by s.
func (m *Map[S, E]) scaled(s weight.Weight) iter.Seq2[S, weight.Weight] {
	return func(yield func(S, weight.Weight) bool) {
		for k, w := range m.entries.All() {
			if !yield(k, w.Mul(s)) {
				return
			}
		}
	}
}

func concat[S any](seqs ...iter.Seq2[S, weight.Weight]) iter.Seq2[S, weight.Weight] {
	return func(yield func(S, weight.Weight) bool) {
		for _, s := range seqs {
			for k, w := range s {
				if !yield(k, w) {
					return
				}
			}
		}
	}
}

// ScaleLog multiplies every weight by exp(logScale). A zero scale returns
// the receiver.
func (m *Map[S, E]) ScaleLog(logScale float64) *Map[S, E] {
	if logScale == 0 {
		return m
	}
	return m.fam.fromDistinctSeq(m.scaled(weight.FromLogValue(logScale)))
}

// Sum returns the pointwise sum of m and other.
func (m *Map[S, E]) Sum(other *Map[S, E]) *Map[S, E] {
	return m.fam.fromSeq(concat(m.entries.All(), other.entries.All()))
}

// SumWeighted returns w1·m + w2·other for linear mixture weights.
// Negative weights fail with automaton.ErrNegativeMixtureWeight.
func (m *Map[S, E]) SumWeighted(w1, w2 float64, other *Map[S, E]) (*Map[S, E], error) {
	if w1 < 0 || w2 < 0 {
		return nil, fmt.Errorf("%w: %g, %g", automaton.ErrNegativeMixtureWeight, w1, w2)
	}
	return m.SumLog(math.Log(w1), math.Log(w2), other), nil
}

// SumLog returns exp(logW1)·m + exp(logW2)·other.
func (m *Map[S, E]) SumLog(logW1, logW2 float64, other *Map[S, E]) *Map[S, E] {
	return m.fam.fromSeq(concat(
		m.scaled(weight.FromLogValue(logW1)),
		other.scaled(weight.FromLogValue(logW2)),
	))
}

// Product returns the pointwise product: the sequences present in both maps,
// weighted by the product of their weights.
func (m *Map[S, E]) Product(other *Map[S, E]) *Map[S, E] {
	small, large := m, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	return m.fam.fromDistinctSeq(func(yield func(S, weight.Weight) bool) {
		for k, w := range small.entries.All() {
			v, ok := large.entries.Lookup(k)
			if !ok {
				continue
			}
			if !yield(k, w.Mul(v)) {
				return
			}
		}
	})
}

// AppendSequence concatenates s onto every sequence of m. Maps carry no
// group tags, so a non-zero group fails with ErrGroupsNotSupported.
func (m *Map[S, E]) AppendSequence(s S, group int) (*Map[S, E], error) {
	if group != 0 {
		return nil, fmt.Errorf("%w: group %d", ErrGroupsNotSupported, group)
	}
	manip := m.fam.manip
	return m.fam.fromDistinctSeq(func(yield func(S, weight.Weight) bool) {
		for k, w := range m.entries.All() {
			if !yield(manip.Concat(k, s), w) {
				return
			}
		}
	}), nil
}

// Append returns the concatenation of m and other: every sequence of m
// followed by every sequence of other, weighted by the product of weights.
// Concatenations that coincide are summed.
func (m *Map[S, E]) Append(other *Map[S, E], group int) (*Map[S, E], error) {
	if group != 0 {
		return nil, fmt.Errorf("%w: group %d", ErrGroupsNotSupported, group)
	}
	manip := m.fam.manip
	return m.fam.fromSeq(func(yield func(S, weight.Weight) bool) {
		for a, wa := range m.entries.All() {
			for b, wb := range other.entries.All() {
				if !yield(manip.Concat(a, b), wa.Mul(wb)) {
					return
				}
			}
		}
	}), nil
}

// Repeat is not available on maps and always fails with ErrNotImplemented.
// Convert with AsAutomaton to repeat a map.
func (m *Map[S, E]) Repeat(minTimes, maxTimes int) (*Map[S, E], error) {
	return nil, fmt.Errorf("%w: Repeat(%d, %d)", ErrNotImplemented, minTimes, maxTimes)
}
