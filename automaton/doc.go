// Package automaton implements weighted finite-state automata over sequences.
//
// An Automaton[S, E] assigns to every sequence S (made of elements E) a
// non-negative weight: the semiring sum, over all accepting paths spelling the
// sequence, of the product of transition weights, the label weights of the
// consumed elements and the end weight of the last state. Weights live in the
// log domain (package weight), so values spanning many orders of magnitude
// neither underflow nor overflow.
//
// Structure
//
//	– States and transitions are stored in a core.Graph. State indices are
//	  dense; the start state is fixed at construction.
//	– A transition label is an elemdist.Discrete[E]; a nil label is epsilon.
//	– Transitions may carry a group id; 0 means untagged.
//
// Construction goes through Builder, which records the first error and
// reports it from GetAutomaton. A finished Automaton is immutable: every
// operation returns a new value (or the receiver when nothing changes), so
// automata are safe for concurrent readers.
//
// Path sums
//
//	GetLogNormalizer and GetLogValue sum over all paths. When the useful part
//	of the graph is acyclic a topological pass (package dfs) in the log domain
//	is exact. Otherwise the linear system x = b + xM is solved with gonum; a
//	spectral radius of M at or above one means the sum diverges and yields +Inf.
//
// Operations
//
//	GetLogValue, GetLogNormalizer, TryNormalizeValues, NormalizeStructure
//	ScaleLog, Sum, SumWeighted, SumLog, Product, Append, AppendSequence, Repeat
//	EnumerateSupport, TryEnumerateSupport, EnumeratePaths
//	GetGroups, HasGroup, UsesGroups
//	GetLogSimilarity, MaxDiff, MostProbableSequence
//
// Errors
//
//	ErrNotPointMass          – Point on anything but a single-sequence support
//	ErrEnumerationCount      – support larger than maxCount, or infinite
//	ErrCyclicAutomaton       – path enumeration over a cyclic automaton
//	ErrNegativeMixtureWeight – negative linear weight in SumWeighted
//	ErrInvalidRepeat         – bad repetition bounds
//	ErrZeroWeight            – MostProbableSequence of the zero automaton
//	ErrBuilderUsed           – builder reused after GetAutomaton
package automaton
