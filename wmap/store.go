// File: store.go
// Role: Backing stores of a Map.
//
// Determinism:
//   - hashStore enumerates in first-insertion order.
//   - sortedStore enumerates in ascending Compare order.
//   - Repeated sequences are merged in input order (Add) or overwritten
//     (last write wins) depending on the load path.

package wmap

import (
	"iter"
	"slices"

	"github.com/katalvlaran/wlang/seq"
	"github.com/katalvlaran/wlang/weight"
)

// store is the immutable entry table of a Map.
type store[S any] interface {
	Len() int
	Lookup(s S) (weight.Weight, bool)
	All() iter.Seq2[S, weight.Weight]
}

// loader builds a store from pairs. With merge set, repeated sequences are
// summed; otherwise the last weight wins and onDuplicate, when non-nil, is
// called with the repeated sequence.
type loader[S any] func(pairs iter.Seq2[S, weight.Weight], merge bool, onDuplicate func(S)) store[S]

// hashStore keys entries by Manipulator.Hash, resolving collisions with Equal.
type hashStore[S any, E comparable] struct {
	manip   seq.Manipulator[S, E]
	keys    []S
	weights []weight.Weight
	index   map[uint64][]int
}

func hashLoader[S any, E comparable](manip seq.Manipulator[S, E]) loader[S] {
	return func(pairs iter.Seq2[S, weight.Weight], merge bool, onDuplicate func(S)) store[S] {
		h := &hashStore[S, E]{manip: manip, index: make(map[uint64][]int)}
		for s, w := range pairs {
			h.put(s, w, merge, onDuplicate)
		}
		return h
	}
}

func (h *hashStore[S, E]) find(s S, hash uint64) int {
	for _, i := range h.index[hash] {
		if h.manip.Equal(h.keys[i], s) {
			return i
		}
	}
	return -1
}

func (h *hashStore[S, E]) put(s S, w weight.Weight, merge bool, onDuplicate func(S)) {
	hash := h.manip.Hash(s)
	if i := h.find(s, hash); i >= 0 {
		if merge {
			h.weights[i] = h.weights[i].Add(w)
			return
		}
		if onDuplicate != nil {
			onDuplicate(s)
		}
		h.weights[i] = w
		return
	}
	h.index[hash] = append(h.index[hash], len(h.keys))
	h.keys = append(h.keys, s)
	h.weights = append(h.weights, w)
}

func (h *hashStore[S, E]) Len() int { return len(h.keys) }

func (h *hashStore[S, E]) Lookup(s S) (weight.Weight, bool) {
	if i := h.find(s, h.manip.Hash(s)); i >= 0 {
		return h.weights[i], true
	}
	return weight.Zero, false
}

func (h *hashStore[S, E]) All() iter.Seq2[S, weight.Weight] {
	return func(yield func(S, weight.Weight) bool) {
		for i, s := range h.keys {
			if !yield(s, h.weights[i]) {
				return
			}
		}
	}
}

// sortedStore keeps entries sorted by a total order and looks them up by
// binary search.
type sortedStore[S any] struct {
	compare func(a, b S) int
	keys    []S
	weights []weight.Weight
}

func sortedLoader[S any](compare func(a, b S) int) loader[S] {
	return func(pairs iter.Seq2[S, weight.Weight], merge bool, onDuplicate func(S)) store[S] {
		type entry struct {
			s S
			w weight.Weight
		}
		var es []entry
		for s, w := range pairs {
			es = append(es, entry{s, w})
		}
		// Stable, so repeated sequences keep input order below.
		slices.SortStableFunc(es, func(a, b entry) int { return compare(a.s, b.s) })

		st := &sortedStore[S]{
			compare: compare,
			keys:    make([]S, 0, len(es)),
			weights: make([]weight.Weight, 0, len(es)),
		}
		for _, e := range es {
			if n := len(st.keys); n > 0 && compare(st.keys[n-1], e.s) == 0 {
				if merge {
					st.weights[n-1] = st.weights[n-1].Add(e.w)
					continue
				}
				if onDuplicate != nil {
					onDuplicate(e.s)
				}
				st.weights[n-1] = e.w
				continue
			}
			st.keys = append(st.keys, e.s)
			st.weights = append(st.weights, e.w)
		}
		return st
	}
}

func (st *sortedStore[S]) Len() int { return len(st.keys) }

func (st *sortedStore[S]) Lookup(s S) (weight.Weight, bool) {
	if i, ok := slices.BinarySearchFunc(st.keys, s, st.compare); ok {
		return st.weights[i], true
	}
	return weight.Zero, false
}

func (st *sortedStore[S]) All() iter.Seq2[S, weight.Weight] {
	return func(yield func(S, weight.Weight) bool) {
		for i, s := range st.keys {
			if !yield(s, st.weights[i]) {
				return
			}
		}
	}
}
