package wmap

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/wlang/automaton"
	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/elemdist"
	"github.com/katalvlaran/wlang/weight"
)

// Map is an immutable sparse weighted language: a finite table from
// sequences to log-domain weights. Sequences absent from the table have
// weight Zero. Entries with weight Zero may be present until
// NormalizeStructure removes them.
type Map[S any, E comparable] struct {
	fam     *Family[S, E]
	entries store[S]
}

// Family returns the family that built m.
func (m *Map[S, E]) Family() *Family[S, E] { return m.fam }

// Entries yields every (sequence, weight) entry in store order.
func (m *Map[S, E]) Entries() iter.Seq2[S, weight.Weight] { return m.entries.All() }

// Len returns the number of entries, zero-weight ones included.
func (m *Map[S, E]) Len() int { return m.entries.Len() }

// Point returns the only sequence of a single-entry map.
func (m *Map[S, E]) Point() (s S, err error) {
	if m.Len() != 1 {
		return s, fmt.Errorf("%w: %d entries", ErrNotPointMass, m.Len())
	}
	for s = range m.entries.All() {
		break
	}
	return s, nil
}

// IsPointMass reports whether m has exactly one entry, whatever its weight.
func (m *Map[S, E]) IsPointMass() bool { return m.Len() == 1 }

// IsZero reports whether every entry weight is Zero; the empty map is zero.
func (m *Map[S, E]) IsZero() bool {
	for _, w := range m.entries.All() {
		if !w.IsZero() {
			return false
		}
	}
	return true
}

// UsesAutomatonRepresentation is false for maps.
func (m *Map[S, E]) UsesAutomatonRepresentation() bool { return false }

// UsesGroups is false for maps.
func (m *Map[S, E]) UsesGroups() bool { return false }

// GetGroups returns an empty map: maps carry no group tags.
func (m *Map[S, E]) GetGroups() map[int]*Map[S, E] { return map[int]*Map[S, E]{} }

// HasGroup is false for every group.
func (m *Map[S, E]) HasGroup(int) bool { return false }

// GetLogValue returns the log weight of s, -Inf when s is absent.
func (m *Map[S, E]) GetLogValue(s S) float64 {
	w, _ := m.entries.Lookup(s)
	return w.LogValue()
}

// AsAutomaton converts m into an automaton with the same weight function:
// one epsilon branch per non-zero entry, carrying the entry weight into a
// chain that spells the sequence and ends in an accepting state.
//
// It panics if an entry weight is NaN.
func (m *Map[S, E]) AsAutomaton() *automaton.Automaton[S, E] {
	b := automaton.NewBuilder(m.fam.manip, core.WithStateCapacity(2*m.Len()+1))
	for s, w := range m.entries.All() {
		if w.IsZero() {
			continue
		}
		branch := b.AddState()
		b.AddEpsilonTransition(b.Start(), branch, w, 0)
		last := b.AddTransitionsForSequence(branch, s, 0)
		b.SetEndWeight(last, weight.One)
	}
	a, err := b.GetAutomaton()
	if err != nil {
		panic(fmt.Errorf("wmap: convert to automaton: %w", err))
	}
	return a
}

// EnumerateSupport returns every key of m in store order, zero-weight keys
// included. It fails with automaton.ErrEnumerationCount when m has more than
// maxCount entries. tryDeterminize has no effect on maps.
func (m *Map[S, E]) EnumerateSupport(maxCount int, tryDeterminize bool) ([]S, error) {
	if m.Len() > maxCount {
		return nil, fmt.Errorf("%w: %d entries, bound %d", automaton.ErrEnumerationCount, m.Len(), maxCount)
	}
	out := make([]S, 0, m.Len())
	for s := range m.entries.All() {
		out = append(out, s)
	}
	return out, nil
}

// TryEnumerateSupport is EnumerateSupport reporting overflow as false.
func (m *Map[S, E]) TryEnumerateSupport(maxCount int, tryDeterminize bool) ([]S, bool) {
	out, err := m.EnumerateSupport(maxCount, tryDeterminize)
	if err != nil {
		return nil, false
	}
	return out, true
}

// EnumeratePaths yields, for every entry, the point-mass label of each
// element and the entry log weight. The error is always nil for maps.
func (m *Map[S, E]) EnumeratePaths() (iter.Seq2[[]elemdist.Discrete[E], float64], error) {
	manip := m.fam.manip
	return func(yield func([]elemdist.Discrete[E], float64) bool) {
		for s, w := range m.entries.All() {
			elems := manip.Elements(s)
			labels := make([]elemdist.Discrete[E], len(elems))
			for i, e := range elems {
				labels[i] = elemdist.PointMass(e)
			}
			if !yield(labels, w.LogValue()) {
				return
			}
		}
	}, nil
}

// GetLogNormalizer returns the log of the total weight, -Inf for an empty map.
func (m *Map[S, E]) GetLogNormalizer() float64 {
	logs := make([]float64, 0, m.Len())
	for _, w := range m.entries.All() {
		logs = append(logs, w.LogValue())
	}
	return weight.LogSumExp(logs)
}

// TryNormalizeValues scales m so that its weights sum to one and returns
// the result with the log normalizer. The receiver is returned with false
// when the normalizer is NaN or infinite, and with true when it is already 0.
func (m *Map[S, E]) TryNormalizeValues() (*Map[S, E], float64, bool) {
	logNorm := m.GetLogNormalizer()
	switch {
	case math.IsNaN(logNorm) || math.IsInf(logNorm, 0):
		m.fam.logger.Debug("cannot normalize", "entries", m.Len(), "log_normalizer", logNorm)
		return m, logNorm, false
	case logNorm == 0:
		return m, logNorm, true
	}
	return m.ScaleLog(-logNorm), logNorm, true
}

// NormalizeStructure removes zero-weight entries. The receiver is returned
// when it has none.
func (m *Map[S, E]) NormalizeStructure() *Map[S, E] {
	if !m.hasZeroEntry() {
		return m
	}
	return m.fam.fromDistinctSeq(func(yield func(S, weight.Weight) bool) {
		for s, w := range m.entries.All() {
			if w.IsZero() {
				continue
			}
			if !yield(s, w) {
				return
			}
		}
	})
}

func (m *Map[S, E]) hasZeroEntry() bool {
	for _, w := range m.entries.All() {
		if w.IsZero() {
			return true
		}
	}
	return false
}

// MaxDiff compares m and other through their automata; see
// automaton.GetLogSimilarity.
func (m *Map[S, E]) MaxDiff(other *Map[S, E]) float64 {
	return m.AsAutomaton().MaxDiff(other.AsAutomaton())
}

// MarshalJSON encodes m as an array of {"sequence", "weight"} objects in
// store order.
func (m *Map[S, E]) MarshalJSON() ([]byte, error) {
	pairs := make([]Pair[S], 0, m.Len())
	for s, w := range m.entries.All() {
		pairs = append(pairs, Pair[S]{Sequence: s, Weight: w})
	}
	return json.Marshal(pairs)
}
