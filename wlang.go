package wlang

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/wlang/automaton"
	"github.com/katalvlaran/wlang/elemdist"
	"github.com/katalvlaran/wlang/wmap"
)

var (
	// ErrEmptyMixture is returned by Mixture without components.
	ErrEmptyMixture = errors.New("wlang: mixture has no components")

	// ErrLengthMismatch is returned by Mixture when components and weights differ in length.
	ErrLengthMismatch = errors.New("wlang: components and weights differ in length")
)

// WeightFunction is the capability set shared by every representation of a
// weighted language over sequences S of elements E. T is the implementing
// type itself, so operations return values of the same representation.
type WeightFunction[S any, E comparable, T any] interface {
	// AsAutomaton returns an automaton with the same weight function.
	AsAutomaton() *automaton.Automaton[S, E]
	UsesAutomatonRepresentation() bool
	UsesGroups() bool

	IsZero() bool
	IsPointMass() bool
	Point() (S, error)

	GetLogValue(s S) float64
	GetLogNormalizer() float64
	TryNormalizeValues() (T, float64, bool)
	NormalizeStructure() T

	EnumerateSupport(maxCount int, tryDeterminize bool) ([]S, error)
	TryEnumerateSupport(maxCount int, tryDeterminize bool) ([]S, bool)
	EnumeratePaths() (iter.Seq2[[]elemdist.Discrete[E], float64], error)

	ScaleLog(logScale float64) T
	Sum(other T) T
	SumWeighted(w1, w2 float64, other T) (T, error)
	SumLog(logW1, logW2 float64, other T) T
	Product(other T) T
	Append(other T, group int) (T, error)
	AppendSequence(s S, group int) (T, error)
	Repeat(minTimes, maxTimes int) (T, error)

	GetGroups() map[int]T
	HasGroup(group int) bool
	MaxDiff(other T) float64
}

var (
	_ WeightFunction[string, rune, *wmap.Map[string, rune]]             = (*wmap.Map[string, rune])(nil)
	_ WeightFunction[[]int, int, *wmap.Map[[]int, int]]                 = (*wmap.Map[[]int, int])(nil)
	_ WeightFunction[string, rune, *automaton.Automaton[string, rune]] = (*automaton.Automaton[string, rune])(nil)
)

// Probability returns the normalized weight of s under f: its weight
// divided by the total weight. It is NaN when the total is zero or infinite.
func Probability[S any, E comparable, T WeightFunction[S, E, T]](f T, s S) float64 {
	logNorm := f.GetLogNormalizer()
	if math.IsInf(logNorm, 0) {
		return math.NaN()
	}
	return math.Exp(f.GetLogValue(s) - logNorm)
}

// Mixture returns Σ weights[i]·fs[i] for non-negative linear weights.
func Mixture[S any, E comparable, T WeightFunction[S, E, T]](fs []T, weights []float64) (T, error) {
	var zero T
	if len(fs) == 0 {
		return zero, ErrEmptyMixture
	}
	if len(fs) != len(weights) {
		return zero, fmt.Errorf("%w: %d components, %d weights", ErrLengthMismatch, len(fs), len(weights))
	}
	for i, w := range weights {
		if w < 0 {
			return zero, fmt.Errorf("%w: weight %d is %g", automaton.ErrNegativeMixtureWeight, i, w)
		}
	}

	acc := fs[0].ScaleLog(math.Log(weights[0]))
	for i := 1; i < len(fs); i++ {
		acc = acc.SumLog(0, math.Log(weights[i]), fs[i])
	}
	return acc, nil
}
