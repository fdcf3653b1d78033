package automaton

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wlang/bfs"
	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/dfs"
	"github.com/katalvlaran/wlang/weight"
)

// arc is one weighted edge of a path-sum system.
type arc struct {
	from, to int
	w        weight.Weight
}

// closure sums path weights over a fixed set of arcs. It is prepared once
// and applied to many initial vectors.
//
// Acyclic systems are summed exactly in the log domain along a topological
// order. Cyclic systems are solved in the linear domain: x = b + xM, i.e.
// (I - M)ᵀ xᵀ = bᵀ. The series converges on a strongly connected component
// only when the spectral radius of its block of M is below one; states
// reachable from a divergent component carry infinite weight and the rest
// of the system is solved exactly.
type closure struct {
	g         *core.Graph[struct{}]
	order     []int   // topological order; nil when cyclic
	lu        *mat.LU // whole system, when no component diverges
	divergent []bool  // states on a divergent component
	broken    bool    // structure could not be analysed
	all       []int   // 0..n-1
}

// newClosure prepares the path-sum system of n states over arcs. Zero arcs
// are ignored.
func newClosure(n int, arcs []arc) *closure {
	g := core.NewGraph[struct{}](core.WithLoops(), core.WithStateCapacity(n))
	g.AddStates(n)
	for _, a := range arcs {
		if !a.w.IsZero() {
			// Endpoints come from a valid automaton; errors are impossible.
			_, _ = g.AddTransition(a.from, a.to, a.w, nil)
		}
	}
	c := &closure{g: g, all: make([]int, n)}
	for q := range c.all {
		c.all[q] = q
	}

	order, err := dfs.TopologicalSort(g)
	if err == nil {
		c.order = order
		return c
	}
	if !errors.Is(err, dfs.ErrCycleDetected) {
		c.broken = true
		return c
	}

	comps, err := dfs.StronglyConnected(g)
	if err != nil {
		c.broken = true
		return c
	}
	c.divergent = make([]bool, n)
	diverges := false
	for _, comp := range comps {
		m, inner := c.block(comp)
		if inner == 0 {
			continue
		}
		if spectralRadius(m) >= 1 {
			diverges = true
			for _, q := range comp {
				c.divergent[q] = true
			}
		}
	}
	if !diverges {
		c.lu = c.factorize(c.all)
	}

	return c
}

// block returns the matrix of the arcs running inside states, indexed by
// position in states, and how many arcs it holds.
func (c *closure) block(states []int) (*mat.Dense, int) {
	pos := make(map[int]int, len(states))
	for i, q := range states {
		pos[q] = i
	}
	m := mat.NewDense(len(states), len(states), nil)
	count := 0
	for _, t := range c.g.Transitions() {
		i, ok1 := pos[t.From]
		j, ok2 := pos[t.To]
		if ok1 && ok2 {
			m.Set(i, j, m.At(i, j)+t.Weight.Value())
			count++
		}
	}

	return m, count
}

// factorize returns the LU decomposition of I - M restricted to states.
func (c *closure) factorize(states []int) *mat.LU {
	k := len(states)
	m, _ := c.block(states)
	a := mat.NewDense(k, k, nil)
	a.Sub(identity(k), m)
	var lu mat.LU
	lu.Factorize(a)

	return &lu
}

// apply returns, for every state q, the total weight of all paths ending in
// q that start in any state s with weight init[s] (the empty path included).
func (c *closure) apply(init []weight.Weight) []weight.Weight {
	n := len(init)
	x := make([]weight.Weight, n)
	copy(x, init)

	switch {
	case c.order != nil:
		for _, q := range c.order {
			if x[q].IsZero() {
				continue
			}
			outs, _ := c.g.Outgoing(q)
			for _, t := range outs {
				x[t.To] = x[t.To].Add(x[q].Mul(t.Weight))
			}
		}
		return x

	case c.broken:
		return c.infiniteFrom(init)
	}

	shift := math.Inf(-1)
	for _, w := range init {
		shift = max(shift, w.LogValue())
	}
	if math.IsInf(shift, -1) {
		return x
	}
	if math.IsInf(shift, 1) || math.IsNaN(shift) {
		return c.infiniteFrom(init)
	}

	if c.lu != nil {
		if !c.solve(c.lu, c.all, init, shift, x) {
			return c.infiniteFrom(init)
		}
		return x
	}

	// Some component diverges: split the states the initial vector reaches
	// into those downstream of a divergent component and the rest.
	reach, err := bfs.Reachable(c.g, support(init))
	if err != nil {
		return c.infiniteFrom(init)
	}
	var hot []int
	for q, r := range reach {
		if r && c.divergent[q] {
			hot = append(hot, q)
		}
	}
	inf := make([]bool, n)
	if len(hot) > 0 {
		if inf, err = bfs.Reachable(c.g, hot); err != nil {
			return c.infiniteFrom(init)
		}
	}
	var keep []int
	for q := range n {
		switch {
		case inf[q]:
			x[q] = weight.Infinity
		case reach[q]:
			keep = append(keep, q)
		default:
			x[q] = weight.Zero
		}
	}
	// Paths into kept states never leave them, and kept components all
	// converge, so the restricted system is exact.
	if len(keep) > 0 && !c.solve(c.factorize(keep), keep, init, shift, x) {
		return c.infiniteFrom(init)
	}

	return x
}

// solve writes into x the path sums of the sub-system over states, whose
// I - M is factorized in lu. It reports false when lu is singular.
func (c *closure) solve(lu *mat.LU, states []int, init []weight.Weight, shift float64, x []weight.Weight) bool {
	b := mat.NewVecDense(len(states), nil)
	for i, q := range states {
		b.SetVec(i, math.Exp(init[q].LogValue()-shift))
	}
	var sol mat.VecDense
	if err := lu.SolveVecTo(&sol, true, b); err != nil {
		return false
	}
	for i, q := range states {
		if v := sol.AtVec(i); v > 0 {
			x[q] = weight.FromLogValue(math.Log(v) + shift)
		} else {
			x[q] = weight.Zero
		}
	}

	return true
}

// infiniteFrom marks every state reachable from the support of init as
// carrying infinite weight.
func (c *closure) infiniteFrom(init []weight.Weight) []weight.Weight {
	x := make([]weight.Weight, len(init))
	reach, err := bfs.Reachable(c.g, support(init))
	for q := range x {
		x[q] = weight.Zero
		if err == nil && reach[q] {
			x[q] = weight.Infinity
		}
	}

	return x
}

// support lists the states with non-zero weight.
func support(w []weight.Weight) []int {
	var out []int
	for q, v := range w {
		if !v.IsZero() {
			out = append(out, q)
		}
	}

	return out
}

// spectralRadius returns the largest eigenvalue modulus of m, or +Inf when
// the eigen decomposition fails.
func spectralRadius(m *mat.Dense) float64 {
	var eig mat.Eigen
	if !eig.Factorize(m, mat.EigenNone) {
		return math.Inf(1)
	}
	rho := 0.0
	for _, v := range eig.Values(nil) {
		rho = max(rho, cmplx.Abs(v))
	}

	return rho
}

func identity(n int) *mat.DiagDense {
	d := make([]float64, n)
	for i := range d {
		d[i] = 1
	}

	return mat.NewDiagDense(n, d)
}
