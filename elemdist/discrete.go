// Package elemdist provides Discrete, a sparse unnormalized weight function
// over sequence elements. Automaton transitions use it as their label: a
// transition labeled d with weight w consumes element e with weight w·d(e).
//
// PointMass is the degenerate distribution concentrated on one element; it is
// what weighted-language maps emit from EnumeratePaths and what they put on
// the transitions of AsAutomaton.
package elemdist

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wlang/weight"
)

// Discrete is an immutable sparse map from element to weight. Elements keep
// their first-insertion order so that enumeration is deterministic.
type Discrete[E comparable] struct {
	elems   []E
	weights []weight.Weight
	index   map[E]int
}

// PointMass returns the distribution {e: One}.
func PointMass[E comparable](e E) Discrete[E] {
	return Discrete[E]{
		elems:   []E{e},
		weights: []weight.Weight{weight.One},
		index:   map[E]int{e: 0},
	}
}

// FromWeights builds a distribution from parallel slices. Repeated elements
// have their weights summed; zero weights are dropped.
func FromWeights[E comparable](elems []E, weights []weight.Weight) (Discrete[E], error) {
	if len(elems) != len(weights) {
		return Discrete[E]{}, fmt.Errorf("elemdist: %d elements but %d weights", len(elems), len(weights))
	}
	d := Discrete[E]{index: make(map[E]int, len(elems))}
	for i, e := range elems {
		d.add(e, weights[i])
	}
	return d, nil
}

// Uniform returns the distribution giving weight One to every element of elems.
func Uniform[E comparable](elems ...E) Discrete[E] {
	d := Discrete[E]{index: make(map[E]int, len(elems))}
	for _, e := range elems {
		if _, ok := d.index[e]; !ok {
			d.add(e, weight.One)
		}
	}
	return d
}

func (d *Discrete[E]) add(e E, w weight.Weight) {
	if w.IsZero() {
		return
	}
	if i, ok := d.index[e]; ok {
		d.weights[i] = d.weights[i].Add(w)
		return
	}
	d.index[e] = len(d.elems)
	d.elems = append(d.elems, e)
	d.weights = append(d.weights, w)
}

// Weight returns d(e), Zero when e is outside the support.
func (d Discrete[E]) Weight(e E) weight.Weight {
	if i, ok := d.index[e]; ok {
		return d.weights[i]
	}
	return weight.Zero
}

// LogProb returns log d(e).
func (d Discrete[E]) LogProb(e E) float64 { return d.Weight(e).LogValue() }

// Support returns the elements with non-zero weight in insertion order.
func (d Discrete[E]) Support() []E {
	out := make([]E, len(d.elems))
	copy(out, d.elems)
	return out
}

// Len returns the size of the support.
func (d Discrete[E]) Len() int { return len(d.elems) }

// IsZero reports an empty support.
func (d Discrete[E]) IsZero() bool { return len(d.elems) == 0 }

// IsPointMass reports whether the support has exactly one element.
func (d Discrete[E]) IsPointMass() bool { return len(d.elems) == 1 }

// Point returns the sole support element of a point mass.
func (d Discrete[E]) Point() (E, bool) {
	if len(d.elems) != 1 {
		var zero E
		return zero, false
	}
	return d.elems[0], true
}

// Mass returns Σ d(e).
func (d Discrete[E]) Mass() weight.Weight { return weight.Sum(d.weights...) }

// Mode returns the element of largest weight; ties go to the earliest.
func (d Discrete[E]) Mode() (E, weight.Weight, bool) {
	var best E
	if len(d.elems) == 0 {
		return best, weight.Zero, false
	}
	bi := 0
	for i := 1; i < len(d.weights); i++ {
		if d.weights[i].LogValue() > d.weights[bi].LogValue() {
			bi = i
		}
	}
	return d.elems[bi], d.weights[bi], true
}

// Product returns the pointwise product d·other; elements outside either
// support are dropped.
func (d Discrete[E]) Product(other Discrete[E]) Discrete[E] {
	small, large, swapped := d, other, false
	if small.Len() > large.Len() {
		small, large, swapped = large, small, true
	}
	out := Discrete[E]{index: make(map[E]int, small.Len())}
	for i, e := range small.elems {
		if j, ok := large.index[e]; ok {
			out.add(e, small.weights[i].Mul(large.weights[j]))
		}
	}
	if swapped {
		// keep d's element order regardless of which side drove the loop
		out = out.reorder(d)
	}
	return out
}

func (d Discrete[E]) reorder(like Discrete[E]) Discrete[E] {
	out := Discrete[E]{index: make(map[E]int, d.Len())}
	for _, e := range like.elems {
		if i, ok := d.index[e]; ok {
			out.add(e, d.weights[i])
		}
	}
	return out
}

// Scale multiplies every weight by s.
func (d Discrete[E]) Scale(s weight.Weight) Discrete[E] {
	out := Discrete[E]{index: make(map[E]int, d.Len())}
	for i, e := range d.elems {
		out.add(e, d.weights[i].Mul(s))
	}
	return out
}

// String renders a point mass as its element and anything else as a weight list.
func (d Discrete[E]) String() string {
	if p, ok := d.Point(); ok && d.weights[0].IsOne() {
		return fmt.Sprintf("%v", p)
	}
	parts := make([]string, len(d.elems))
	for i, e := range d.elems {
		parts[i] = fmt.Sprintf("%v:%g", e, d.weights[i].Value())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
