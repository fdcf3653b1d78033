package wmap

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/katalvlaran/wlang/seq"
	"github.com/katalvlaran/wlang/weight"
)

// Pair is one (sequence, weight) entry. It is also the persisted JSON form.
type Pair[S any] struct {
	Sequence S             `json:"sequence"`
	Weight   weight.Weight `json:"weight"`
}

// ValuePair is a (sequence, linear probability) entry.
type ValuePair[S any] struct {
	Sequence S
	Value    float64
}

// Family constructs Maps over one sequence type. It fixes the sequence
// manipulator and the backing store; all algebra is shared between families.
//
// The map retains the sequences it is given. Slice sequences must not be
// modified afterwards.
type Family[S any, E comparable] struct {
	manip seq.Manipulator[S, E]

	// setWeights loads possibly repeated pairs, summing repeats.
	setWeights func(pairs iter.Seq2[S, weight.Weight]) store[S]
	// setDistinctWeights loads pairs asserted to be distinct.
	setDistinctWeights func(pairs iter.Seq2[S, weight.Weight]) store[S]

	logger *slog.Logger
}

// NewFamily returns a family backed by an insertion-ordered hash store.
func NewFamily[S any, E comparable](manip seq.Manipulator[S, E], opts ...Option) *Family[S, E] {
	return newFamily(manip, hashLoader(manip), opts)
}

// NewSortedFamily returns a family backed by a store sorted with manip.Compare.
func NewSortedFamily[S any, E comparable](manip seq.OrderedManipulator[S, E], opts ...Option) *Family[S, E] {
	return newFamily[S, E](manip, sortedLoader(manip.Compare), opts)
}

// Strings returns the family of string sequences over runes, sorted store.
func Strings(opts ...Option) *Family[string, rune] {
	return NewSortedFamily[string, rune](seq.String{}, opts...)
}

// Lists returns the family of slice sequences, hash store.
func Lists[E comparable](opts ...Option) *Family[[]E, E] {
	return NewFamily[[]E, E](seq.List[E]{}, opts...)
}

// OrderedLists returns the family of slice sequences over ordered elements,
// sorted store.
func OrderedLists[E cmp.Ordered](opts ...Option) *Family[[]E, E] {
	return NewSortedFamily[[]E, E](seq.OrderedList[E]{}, opts...)
}

func newFamily[S any, E comparable](manip seq.Manipulator[S, E], load loader[S], opts []Option) *Family[S, E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Family[S, E]{manip: manip, logger: o.logger}
	f.setWeights = func(pairs iter.Seq2[S, weight.Weight]) store[S] {
		return load(pairs, true, nil)
	}

	var onDuplicate func(S)
	if o.distinctCheck {
		onDuplicate = func(s S) {
			f.logger.Debug("duplicate sequence in distinct pairs", "sequence", s)
			panic(fmt.Errorf("%w: %v", ErrDuplicateSequence, s))
		}
	}
	f.setDistinctWeights = func(pairs iter.Seq2[S, weight.Weight]) store[S] {
		return load(pairs, false, onDuplicate)
	}

	return f
}

// Manipulator returns the sequence manipulator of the family.
func (f *Family[S, E]) Manipulator() seq.Manipulator[S, E] { return f.manip }

// Zero returns the empty map.
func (f *Family[S, E]) Zero() *Map[S, E] {
	return f.FromDistinctWeights(nil)
}

// FromWeights builds a map from pairs; weights of repeated sequences are summed.
func (f *Family[S, E]) FromWeights(pairs []Pair[S]) *Map[S, E] {
	return f.newMap(f.setWeights(pairSeq(pairs)))
}

// FromDistinctWeights builds a map from pairs whose sequences are distinct.
// If a sequence repeats, its last weight wins, unless the family was built
// with WithDistinctCheck.
func (f *Family[S, E]) FromDistinctWeights(pairs []Pair[S]) *Map[S, E] {
	return f.newMap(f.setDistinctWeights(pairSeq(pairs)))
}

// FromValues is FromWeights over linear probabilities.
func (f *Family[S, E]) FromValues(pairs []ValuePair[S]) (*Map[S, E], error) {
	ps, err := valuePairs(pairs)
	if err != nil {
		return nil, err
	}
	return f.FromWeights(ps), nil
}

// FromDistinctValues is FromDistinctWeights over linear probabilities.
func (f *Family[S, E]) FromDistinctValues(pairs []ValuePair[S]) (*Map[S, E], error) {
	ps, err := valuePairs(pairs)
	if err != nil {
		return nil, err
	}
	return f.FromDistinctWeights(ps), nil
}

// FromPoint returns the map {s: One}.
func (f *Family[S, E]) FromPoint(s S) *Map[S, E] {
	return f.FromDistinctWeights([]Pair[S]{{Sequence: s, Weight: weight.One}})
}

// Decode reads a JSON array of {"sequence", "weight"} objects and builds a
// map with FromWeights.
func (f *Family[S, E]) Decode(r io.Reader) (*Map[S, E], error) {
	var pairs []Pair[S]
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("wmap: decode: %w", err)
	}
	return f.FromWeights(pairs), nil
}

func (f *Family[S, E]) fromSeq(pairs iter.Seq2[S, weight.Weight]) *Map[S, E] {
	return f.newMap(f.setWeights(pairs))
}

func (f *Family[S, E]) fromDistinctSeq(pairs iter.Seq2[S, weight.Weight]) *Map[S, E] {
	return f.newMap(f.setDistinctWeights(pairs))
}

func (f *Family[S, E]) newMap(st store[S]) *Map[S, E] {
	return &Map[S, E]{fam: f, entries: st}
}

func pairSeq[S any](pairs []Pair[S]) iter.Seq2[S, weight.Weight] {
	return func(yield func(S, weight.Weight) bool) {
		for _, p := range pairs {
			if !yield(p.Sequence, p.Weight) {
				return
			}
		}
	}
}

func valuePairs[S any](pairs []ValuePair[S]) ([]Pair[S], error) {
	out := make([]Pair[S], len(pairs))
	for i, p := range pairs {
		if p.Value < 0 {
			return nil, fmt.Errorf("%w: %v has value %g", ErrNegativeValue, p.Sequence, p.Value)
		}
		out[i] = Pair[S]{Sequence: p.Sequence, Weight: weight.FromValue(p.Value)}
	}
	return out, nil
}
