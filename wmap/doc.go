// Package wmap implements sparse weighted languages: finite tables from
// sequences to log-domain weights with an exact algebra.
//
// A Map is built by a Family, which fixes the sequence type and how entries
// are stored:
//
//	Strings()          string keys over runes, sorted store
//	Lists[E]()         []E keys, insertion-ordered hash store
//	OrderedLists[E]()  []E keys over ordered elements, sorted store
//	NewFamily / NewSortedFamily for any seq.Manipulator
//
// Construction:
//
//	FromWeights(pairs)           repeated sequences are summed
//	FromDistinctWeights(pairs)   caller asserts distinct sequences; last write wins
//	FromValues / FromDistinctValues over linear probabilities
//	FromPoint(s)                 {s: One}
//	Decode(r)                    JSON array of {"sequence", "weight"}
//
// Every operation returns a new Map, or the receiver when the result is
// provably unchanged. Maps are safe for concurrent readers.
//
// Algebra:
//
//	ScaleLog, Sum, SumWeighted, SumLog   mixtures
//	Product                              pointwise product (intersection)
//	AppendSequence, Append               concatenation
//	TryNormalizeValues, NormalizeStructure
//
// Operations a sparse table cannot express go through AsAutomaton: MaxDiff
// is computed on the automata, and Repeat fails with ErrNotImplemented.
//
// Errors:
//
//	ErrNotPointMass        Point on a map without exactly one entry
//	ErrGroupsNotSupported  Append with a non-zero group
//	ErrNotImplemented      Repeat
//	ErrNegativeValue       FromValues with a negative probability
//	ErrDuplicateSequence   panic value under WithDistinctCheck
//
// Enumeration overflow and negative mixture weights reuse
// automaton.ErrEnumerationCount and automaton.ErrNegativeMixtureWeight.
package wmap
