package automaton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/dijkstra"
	"github.com/katalvlaran/wlang/elemdist"
	"github.com/katalvlaran/wlang/weight"
)

// identicalTolerance bounds the relative rounding error under which two
// weight functions are reported as identical by GetLogSimilarity.
const identicalTolerance = 1e-12

// GetLogSimilarity returns log(‖a−b‖² / (‖a‖² + ‖b‖²)), where ‖f‖² is the
// total weight of f·f. The result is -Inf for identical weight functions and
// 0 for functions with disjoint supports.
func GetLogSimilarity[S any, E comparable](a, b *Automaton[S, E]) float64 {
	logAA := a.Product(a).GetLogNormalizer()
	logBB := b.Product(b).GetLogNormalizer()
	logAB := a.Product(b).GetLogNormalizer()

	logSum := weight.LogSumExp([]float64{logAA, logBB})
	if math.IsInf(logSum, -1) {
		// Both are zero everywhere.
		return math.Inf(-1)
	}
	// ‖a−b‖² = ‖a‖² + ‖b‖² − 2⟨a,b⟩, so the ratio is 1 − exp(r).
	r := math.Ln2 + logAB - logSum
	if r > -identicalTolerance {
		return math.Inf(-1)
	}

	return math.Log(-math.Expm1(r))
}

// MaxDiff returns exp(GetLogSimilarity(a, other)), a divergence in [0, 1].
func (a *Automaton[S, E]) MaxDiff(other *Automaton[S, E]) float64 {
	return math.Exp(GetLogSimilarity(a, other))
}

// MostProbableSequence returns the sequence spelled by the single heaviest
// accepting path, choosing the heaviest element of every label, together with
// the log weight of that path. Transition weights times label weights must
// not exceed one; otherwise dijkstra.ErrNegativeWeight is returned. The zero
// automaton yields ErrZeroWeight.
func (a *Automaton[S, E]) MostProbableSequence() (S, float64, error) {
	var zero S
	trimmed := a.NormalizeStructure()
	if trimmed.IsZero() {
		return zero, math.Inf(-1), ErrZeroWeight
	}

	cost := func(t core.Transition[elemdist.Discrete[E]]) float64 {
		c := -t.Weight.LogValue()
		if !t.IsEpsilon() {
			_, w, _ := t.Label.Mode()
			c -= w.LogValue()
		}
		return c
	}
	dist, prev, err := dijkstra.Dijkstra(trimmed.g, cost, dijkstra.Source(trimmed.start), dijkstra.WithReturnPath())
	if err != nil {
		return zero, 0, fmt.Errorf("automaton: most probable sequence: %w", err)
	}

	best, bestLog := -1, math.Inf(-1)
	for _, s := range trimmed.g.States() {
		if s.EndWeight.IsZero() || math.IsInf(dist[s.Index], 1) {
			continue
		}
		if lw := s.EndWeight.LogValue() - dist[s.Index]; lw > bestLog {
			best, bestLog = s.Index, lw
		}
	}
	if best < 0 {
		return zero, math.Inf(-1), ErrZeroWeight
	}

	path, err := dijkstra.PathTo(trimmed.g, prev, best)
	if err != nil {
		return zero, 0, err
	}
	var elems []E
	for _, id := range path {
		t, err := trimmed.g.Transition(id)
		if err != nil {
			return zero, 0, err
		}
		if t.IsEpsilon() {
			continue
		}
		if e, _, ok := t.Label.Mode(); ok {
			elems = append(elems, e)
		}
	}

	return trimmed.manip.FromElements(elems), bestLog, nil
}
