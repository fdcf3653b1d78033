// Package seq defines the per-sequence-type strategy consumed by weighted
// languages: how to enumerate the elements of a sequence, how to build and
// concatenate sequences, and how to compare them for equality.
//
// Sequences are opaque values of type S over elements of type E. A
// Manipulator never mutates its arguments; Concat and FromElements always
// return fresh values.
package seq

import (
	"cmp"
	"hash/maphash"
	"slices"
	"strings"
	"unicode/utf8"
)

// seed is shared by every manipulator so that equal sequences hash equally
// across maps built by different families in one process.
var seed = maphash.MakeSeed()

// Manipulator is the sequence strategy.
//
// Equal and Hash must agree: Equal(a, b) implies Hash(a) == Hash(b).
type Manipulator[S any, E comparable] interface {
	// Elements returns the elements of s in order.
	Elements(s S) []E
	// FromElements builds a sequence from elements.
	FromElements(elems []E) S
	// Concat returns a followed by b.
	Concat(a, b S) S
	// Equal reports whether a and b are the same sequence.
	Equal(a, b S) bool
	// Hash returns a hash consistent with Equal.
	Hash(s S) uint64
	// Len returns the number of elements of s.
	Len(s S) int
}

// OrderedManipulator additionally provides a total order over sequences,
// consistent with Equal (Compare(a, b) == 0 iff Equal(a, b)).
type OrderedManipulator[S any, E comparable] interface {
	Manipulator[S, E]
	Compare(a, b S) int
}

// String manipulates Go strings as sequences of runes.
//
// A string that is not valid UTF-8 is read the way a range loop reads it:
// every invalid byte is the rune utf8.RuneError. Equal, Hash and Compare
// work on that reading, so "\xff" and "\uFFFD" are the same sequence.
type String struct{}

// canon returns s with every invalid byte replaced by utf8.RuneError.
func canon(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return string([]rune(s))
}

// Elements returns the runes of s.
func (String) Elements(s string) []rune { return []rune(s) }

// FromElements joins runes into a string.
func (String) FromElements(elems []rune) string { return string(elems) }

// Concat returns a+b, both read as runes.
func (String) Concat(a, b string) string { return canon(a) + canon(b) }

// Equal reports whether a and b hold the same runes.
func (String) Equal(a, b string) bool { return a == b || canon(a) == canon(b) }

// Hash hashes the runes of s with the shared seed.
func (String) Hash(s string) uint64 { return maphash.String(seed, canon(s)) }

// Len returns the number of runes in s.
func (String) Len(s string) int { return utf8.RuneCountInString(s) }

// Compare orders strings bytewise over their UTF-8 encoding, which is
// also their order by runes.
func (String) Compare(a, b string) int { return strings.Compare(canon(a), canon(b)) }

// List manipulates slices of comparable elements.
type List[E comparable] struct{}

// Elements returns a copy of s.
func (List[E]) Elements(s []E) []E { return slices.Clone(s) }

// FromElements returns a copy of elems, never nil.
func (List[E]) FromElements(elems []E) []E {
	out := make([]E, len(elems))
	copy(out, elems)
	return out
}

// Concat returns a fresh slice holding a then b.
func (List[E]) Concat(a, b []E) []E {
	out := make([]E, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Equal reports element-wise equality; nil and empty are equal.
func (List[E]) Equal(a, b []E) bool { return slices.Equal(a, b) }

// Hash hashes the length and every element with the shared seed.
func (List[E]) Hash(s []E) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, len(s))
	for _, e := range s {
		maphash.WriteComparable(&h, e)
	}
	return h.Sum64()
}

// Len returns len(s).
func (List[E]) Len(s []E) int { return len(s) }

// OrderedList is a List whose elements are ordered, giving lexicographic
// order over sequences.
//
// For floating-point elements NaN breaks the agreement of Compare and Equal:
// cmp.Compare treats NaN as equal to NaN and below every number, while ==
// never holds for NaN. Sequences holding NaN are not supported as keys.
type OrderedList[E cmp.Ordered] struct {
	List[E]
}

// Compare orders slices lexicographically, NaN first.
func (OrderedList[E]) Compare(a, b []E) int { return slices.Compare(a, b) }

var (
	_ OrderedManipulator[string, rune] = String{}
	_ Manipulator[[]int, int]          = List[int]{}
	_ OrderedManipulator[[]int, int]   = OrderedList[int]{}
)
