package automaton_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wlang/automaton"
	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/dijkstra"
	"github.com/katalvlaran/wlang/elemdist"
	"github.com/katalvlaran/wlang/seq"
	"github.com/katalvlaran/wlang/weight"
)

const eps = 1e-9

type pair struct {
	s string
	v float64
}

// build returns the string automaton with one epsilon branch per pair.
func build(t *testing.T, pairs ...pair) *automaton.Automaton[string, rune] {
	t.Helper()
	b := automaton.NewBuilder[string, rune](seq.String{})
	for _, p := range pairs {
		branch := b.AddState()
		b.AddEpsilonTransition(b.Start(), branch, weight.FromValue(p.v), 0)
		last := b.AddTransitionsForSequence(branch, p.s, 0)
		b.SetEndWeight(last, weight.One)
	}
	a, err := b.GetAutomaton()
	require.NoError(t, err)

	return a
}

// loop returns the automaton of a* with per-step weight p and end weight end.
func loop(t *testing.T, p, end float64) *automaton.Automaton[string, rune] {
	t.Helper()
	b := automaton.NewBuilder[string, rune](seq.String{})
	b.AddTransition(b.Start(), b.Start(), elemdist.PointMass('a'), weight.FromValue(p), 0)
	b.SetEndWeight(b.Start(), weight.FromValue(end))
	a, err := b.GetAutomaton()
	require.NoError(t, err)

	return a
}

func TestBuilder_StickyError(t *testing.T) {
	b := automaton.NewBuilder[string, rune](seq.String{})
	b.AddEpsilonTransition(b.Start(), 42, weight.One, 0)
	assert.Equal(t, -1, b.AddState(), "builder is inert after an error")
	_, err := b.GetAutomaton()
	require.ErrorIs(t, err, core.ErrStateNotFound)

	ok := automaton.NewBuilder[string, rune](seq.String{})
	_, err = ok.GetAutomaton()
	require.NoError(t, err)
	_, err = ok.GetAutomaton()
	require.ErrorIs(t, err, automaton.ErrBuilderUsed)
}

func TestConstructors(t *testing.T) {
	m := seq.String{}
	p := automaton.FromPoint[string, rune](m, "ab")
	assert.Equal(t, 0.0, p.GetLogValue("ab"))
	assert.True(t, math.IsInf(p.GetLogValue("a"), -1))
	assert.True(t, math.IsInf(p.GetLogValue("abc"), -1))
	assert.True(t, p.IsPointMass())
	pt, err := p.Point()
	require.NoError(t, err)
	assert.Equal(t, "ab", pt)

	z := automaton.Zero[string, rune](m)
	assert.True(t, z.IsZero())
	assert.True(t, math.IsInf(z.GetLogNormalizer(), -1))
	_, err = z.Point()
	assert.ErrorIs(t, err, automaton.ErrNotPointMass)

	e := automaton.Epsilon[string, rune](m)
	assert.Equal(t, 0.0, e.GetLogValue(""))
	assert.True(t, e.UsesAutomatonRepresentation())
	assert.Same(t, e, e.AsAutomaton())
}

func TestPathSums(t *testing.T) {
	// Σ_k 0.5^k · 0.5 = 1
	a := loop(t, 0.5, 0.5)
	assert.False(t, a.IsAcyclic())
	assert.InDelta(t, 0, a.GetLogNormalizer(), eps)
	assert.InDelta(t, math.Log(0.125), a.GetLogValue("aa"), eps)

	// Divergent: every a^k weighs one.
	assert.True(t, math.IsInf(loop(t, 1, 1).GetLogNormalizer(), 1))

	// Epsilon self-loop: the empty sequence collects Σ_k 0.5^k = 2.
	b := automaton.NewBuilder[string, rune](seq.String{})
	b.AddEpsilonTransition(b.Start(), b.Start(), weight.FromValue(0.5), 0)
	b.SetEndWeight(b.Start(), weight.One)
	c, err := b.GetAutomaton()
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, c.GetLogValue(""), eps)
}

func TestPathSums_DivergenceStaysLocal(t *testing.T) {
	// start -a-> X (X has an ε self-loop of 0.5), start -b-> C (C has an ε
	// self-loop of 2). Only paths through C diverge.
	b := automaton.NewBuilder[string, rune](seq.String{})
	x, c := b.AddState(), b.AddState()
	b.AddTransition(b.Start(), x, elemdist.PointMass('a'), weight.One, 0)
	b.AddTransition(b.Start(), c, elemdist.PointMass('b'), weight.One, 0)
	b.AddEpsilonTransition(x, x, weight.FromValue(0.5), 0)
	b.AddEpsilonTransition(c, c, weight.FromValue(2), 0)
	b.SetEndWeight(x, weight.One)
	b.SetEndWeight(c, weight.One)
	a, err := b.GetAutomaton()
	require.NoError(t, err)

	assert.False(t, a.IsAcyclic())
	assert.InDelta(t, math.Ln2, a.GetLogValue("a"), eps)
	assert.True(t, math.IsInf(a.GetLogValue("b"), 1))
	assert.True(t, math.IsInf(a.GetLogValue(""), -1))
	assert.True(t, math.IsInf(a.GetLogValue("ab"), -1))
	assert.True(t, math.IsInf(a.GetLogNormalizer(), 1))

	// Without the divergent branch the same structure sums exactly.
	m := seq.String{}
	only := a.Product(automaton.FromPoint[string, rune](m, "a").Sum(automaton.Epsilon[string, rune](m)))
	assert.InDelta(t, math.Ln2, only.GetLogNormalizer(), eps)
}

func TestNormalization(t *testing.T) {
	a := build(t, pair{"a", 2}, pair{"b", 2})
	n, logNorm, ok := a.TryNormalizeValues()
	require.True(t, ok)
	assert.InDelta(t, math.Log(4), logNorm, eps)
	assert.InDelta(t, math.Log(0.5), n.GetLogValue("a"), eps)

	same, _, ok := build(t, pair{"a", 0.5}, pair{"b", 0.5}).TryNormalizeValues()
	assert.True(t, ok)
	assert.NotNil(t, same)

	z := automaton.Zero[string, rune](seq.String{})
	back, _, ok := z.TryNormalizeValues()
	assert.False(t, ok)
	assert.Same(t, z, back)
}

func TestNormalizeStructure(t *testing.T) {
	b := automaton.NewBuilder[string, rune](seq.String{})
	end := b.AddTransitionsForSequence(b.Start(), "ab", 0)
	b.SetEndWeight(end, weight.One)
	dead := b.AddState()
	b.AddTransition(b.Start(), dead, elemdist.PointMass('z'), weight.One, 0)
	a, err := b.GetAutomaton()
	require.NoError(t, err)

	trimmed := a.NormalizeStructure()
	assert.Equal(t, 3, trimmed.StateCount())
	assert.Equal(t, 0.0, trimmed.GetLogValue("ab"))
	assert.Same(t, trimmed, trimmed.NormalizeStructure())
}

// AlgebraSuite checks the operators on small string automata.
type AlgebraSuite struct {
	suite.Suite
	a, b *automaton.Automaton[string, rune]
}

func (s *AlgebraSuite) SetupTest() {
	s.a = build(s.T(), pair{"a", 1}, pair{"b", 2})
	s.b = build(s.T(), pair{"b", 3}, pair{"c", 4})
}

func (s *AlgebraSuite) TestSumAndScale() {
	sum := s.a.Sum(s.b)
	s.InDelta(math.Log(5), sum.GetLogValue("b"), eps)
	s.InDelta(math.Log(10), sum.GetLogNormalizer(), eps)

	mix, err := s.a.SumWeighted(0.5, 2, s.b)
	s.Require().NoError(err)
	s.InDelta(math.Log(7), mix.GetLogValue("b"), eps)

	_, err = s.a.SumWeighted(-1, 1, s.b)
	s.ErrorIs(err, automaton.ErrNegativeMixtureWeight)

	scaled := s.a.ScaleLog(math.Log(3))
	s.InDelta(math.Log(6), scaled.GetLogValue("b"), eps)
	s.Equal(s.a.StateCount(), scaled.StateCount(), "scaling adds no states")
	s.InDelta(math.Log(2), s.a.GetLogValue("b"), eps, "operand unchanged")
	s.True(s.a.ScaleLog(math.Inf(-1)).IsZero())
	s.Same(s.a, s.a.ScaleLog(0))
}

func (s *AlgebraSuite) TestProduct() {
	p := s.a.Product(s.b)
	s.InDelta(math.Log(6), p.GetLogValue("b"), eps)
	s.True(math.IsInf(p.GetLogValue("a"), -1))
	s.InDelta(math.Log(6), p.GetLogNormalizer(), eps)

	support, err := p.EnumerateSupport(10, false)
	s.Require().NoError(err)
	s.Equal([]string{"b"}, support)
}

func (s *AlgebraSuite) TestAppend() {
	cat, err := s.a.Append(s.b, 0)
	s.Require().NoError(err)
	s.InDelta(math.Log(8), cat.GetLogValue("bc"), eps)
	s.InDelta(math.Log(21), cat.GetLogNormalizer(), eps)

	suffixed, err := s.a.AppendSequence("xy", 2)
	s.Require().NoError(err)
	s.InDelta(math.Log(2), suffixed.GetLogValue("bxy"), eps)
	s.True(suffixed.UsesGroups())
	s.True(suffixed.HasGroup(2))
	s.False(suffixed.HasGroup(0))

	groups := suffixed.GetGroups()
	s.Require().Contains(groups, 2)
	s.InDelta(math.Log(3), groups[2].GetLogValue("xy"), eps)

	_, err = s.a.Append(s.b, -1)
	s.ErrorIs(err, core.ErrNegativeGroup)
}

func (s *AlgebraSuite) TestRepeat() {
	half := automaton.FromPoint[string, rune](seq.String{}, "a").ScaleLog(math.Log(0.5))
	star, err := half.Repeat(1, -1)
	s.Require().NoError(err)
	s.InDelta(0, star.GetLogNormalizer(), eps)
	s.InDelta(math.Log(0.125), star.GetLogValue("aaa"), eps)
	s.True(math.IsInf(star.GetLogValue(""), -1))

	bounded, err := automaton.FromPoint[string, rune](seq.String{}, "a").Repeat(0, 2)
	s.Require().NoError(err)
	support, err := bounded.EnumerateSupport(10, false)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"", "a", "aa"}, support)
	s.True(math.IsInf(bounded.GetLogValue("aaa"), -1))

	_, err = half.Repeat(3, 1)
	s.ErrorIs(err, automaton.ErrInvalidRepeat)
	_, err = half.Repeat(-1, 2)
	s.ErrorIs(err, automaton.ErrInvalidRepeat)
}

func TestAlgebraSuite(t *testing.T) {
	suite.Run(t, new(AlgebraSuite))
}

func TestEnumeration(t *testing.T) {
	a := build(t, pair{"a", 1}, pair{"b", 2}, pair{"a", 3})
	support, err := a.EnumerateSupport(10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, support)

	_, err = a.EnumerateSupport(1, false)
	assert.ErrorIs(t, err, automaton.ErrEnumerationCount)
	_, ok := a.TryEnumerateSupport(1, true)
	assert.False(t, ok)

	_, err = loop(t, 0.5, 0.5).EnumerateSupport(100, false)
	assert.ErrorIs(t, err, automaton.ErrEnumerationCount)

	paths, err := a.EnumeratePaths()
	require.NoError(t, err)
	var total float64
	count := 0
	for labels, logW := range paths {
		require.Len(t, labels, 1)
		total += math.Exp(logW)
		count++
	}
	assert.Equal(t, 3, count)
	assert.InDelta(t, 6, total, eps)

	_, err = loop(t, 0.5, 0.5).EnumeratePaths()
	assert.ErrorIs(t, err, automaton.ErrCyclicAutomaton)
}

func TestSimilarity(t *testing.T) {
	a := build(t, pair{"a", 1})
	assert.True(t, math.IsInf(automaton.GetLogSimilarity(a, a), -1))
	assert.InDelta(t, 0, a.MaxDiff(a), eps)

	disjoint := build(t, pair{"b", 1})
	assert.InDelta(t, 1, a.MaxDiff(disjoint), eps)

	// (1-2)² / (1² + 2²)
	assert.InDelta(t, 0.2, a.MaxDiff(build(t, pair{"a", 2})), eps)
}

func TestMostProbableSequence(t *testing.T) {
	a := build(t, pair{"ab", 0.6}, pair{"c", 0.3})
	best, logW, err := a.MostProbableSequence()
	require.NoError(t, err)
	assert.Equal(t, "ab", best)
	assert.InDelta(t, math.Log(0.6), logW, eps)

	_, _, err = build(t, pair{"x", 2}).MostProbableSequence()
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, _, err = automaton.Zero[string, rune](seq.String{}).MostProbableSequence()
	assert.ErrorIs(t, err, automaton.ErrZeroWeight)
}
