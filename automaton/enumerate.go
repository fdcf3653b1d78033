package automaton

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/elemdist"
)

// errStop unwinds a support walk once the bound is exceeded.
var errStop = errors.New("automaton: stop")

// supportSet collects distinct sequences, keyed by the manipulator hash.
type supportSet[S any, E comparable] struct {
	a       *Automaton[S, E]
	max     int
	buckets map[uint64][]int
	seqs    []S
}

func (s *supportSet[S, E]) add(elems []E) error {
	x := s.a.manip.FromElements(elems)
	h := s.a.manip.Hash(x)
	for _, i := range s.buckets[h] {
		if s.a.manip.Equal(s.seqs[i], x) {
			return nil
		}
	}
	if len(s.seqs) >= s.max {
		return errStop
	}
	s.buckets[h] = append(s.buckets[h], len(s.seqs))
	s.seqs = append(s.seqs, x)

	return nil
}

// EnumerateSupport returns the distinct sequences with non-zero weight.
// It fails with ErrEnumerationCount when there are more than maxCount of
// them, or infinitely many. tryDeterminize is accepted for parity with other
// weight functions; supports are deduplicated directly.
func (a *Automaton[S, E]) EnumerateSupport(maxCount int, tryDeterminize bool) ([]S, error) {
	p := a.prepare()
	if !p.useful[a.start] {
		return []S{}, nil
	}
	if !p.acyclic {
		return nil, fmt.Errorf("%w: support is infinite", ErrEnumerationCount)
	}

	set := &supportSet[S, E]{a: a, max: maxCount, buckets: make(map[uint64][]int)}
	outs := a.usefulOutgoing(p.useful)
	var walk func(q int, prefix []E) error
	walk = func(q int, prefix []E) error {
		if end, _ := a.g.EndWeight(q); !end.IsZero() {
			if err := set.add(prefix); err != nil {
				return err
			}
		}
		for _, t := range outs[q] {
			if t.IsEpsilon() {
				if err := walk(t.To, prefix); err != nil {
					return err
				}
				continue
			}
			for _, e := range t.Label.Support() {
				if err := walk(t.To, append(prefix, e)); err != nil {
					return err
				}
			}
		}

		return nil
	}
	if err := walk(a.start, nil); err != nil {
		return nil, fmt.Errorf("%w: more than %d sequences", ErrEnumerationCount, maxCount)
	}

	return set.seqs, nil
}

// TryEnumerateSupport is EnumerateSupport reporting failure as false.
func (a *Automaton[S, E]) TryEnumerateSupport(maxCount int, tryDeterminize bool) ([]S, bool) {
	support, err := a.EnumerateSupport(maxCount, tryDeterminize)
	if err != nil {
		return nil, false
	}

	return support, true
}

// IsPointMass reports whether exactly one sequence has non-zero weight.
func (a *Automaton[S, E]) IsPointMass() bool {
	support, ok := a.TryEnumerateSupport(1, false)

	return ok && len(support) == 1
}

// Point returns the only sequence with non-zero weight, or ErrNotPointMass.
func (a *Automaton[S, E]) Point() (S, error) {
	support, ok := a.TryEnumerateSupport(1, false)
	if !ok || len(support) != 1 {
		var zero S
		return zero, ErrNotPointMass
	}

	return support[0], nil
}

// EnumeratePaths yields every accepting path of the useful part as its list
// of transition labels (epsilon transitions skipped) and the log of the
// product of its transition weights and end weight. Label weights are not
// included. The sequence is lazy and can be ranged over repeatedly. Cyclic
// automata have infinitely many paths and fail with ErrCyclicAutomaton.
func (a *Automaton[S, E]) EnumeratePaths() (iter.Seq2[[]elemdist.Discrete[E], float64], error) {
	p := a.prepare()
	if !p.acyclic {
		return nil, ErrCyclicAutomaton
	}
	outs := a.usefulOutgoing(p.useful)

	return func(yield func([]elemdist.Discrete[E], float64) bool) {
		if !p.useful[a.start] {
			return
		}
		var walk func(q int, labels []elemdist.Discrete[E], logW float64) bool
		walk = func(q int, labels []elemdist.Discrete[E], logW float64) bool {
			if end, _ := a.g.EndWeight(q); !end.IsZero() {
				if !yield(slices.Clone(labels), logW+end.LogValue()) {
					return false
				}
			}
			for _, t := range outs[q] {
				next := labels
				if !t.IsEpsilon() {
					next = append(labels, *t.Label)
				}
				if !walk(t.To, next, logW+t.Weight.LogValue()) {
					return false
				}
			}

			return true
		}
		walk(a.start, nil, 0)
	}, nil
}

// usefulOutgoing groups the useful transitions by source state.
func (a *Automaton[S, E]) usefulOutgoing(useful []bool) [][]core.Transition[elemdist.Discrete[E]] {
	outs := make([][]core.Transition[elemdist.Discrete[E]], a.g.StateCount())
	for _, t := range a.usefulTransitions(useful) {
		outs[t.From] = append(outs[t.From], t)
	}

	return outs
}
