package automaton

import "errors"

var (
	// ErrNotPointMass is returned by Point when the support is not a single sequence.
	ErrNotPointMass = errors.New("automaton: not a point mass")

	// ErrEnumerationCount is returned when a support is larger than the
	// requested bound or infinite.
	ErrEnumerationCount = errors.New("automaton: support exceeds the enumeration bound")

	// ErrCyclicAutomaton is returned when paths of a cyclic automaton are enumerated.
	ErrCyclicAutomaton = errors.New("automaton: automaton has cycles")

	// ErrNegativeMixtureWeight is returned by SumWeighted for negative weights.
	ErrNegativeMixtureWeight = errors.New("automaton: mixture weight is negative")

	// ErrInvalidRepeat is returned by Repeat for invalid bounds.
	ErrInvalidRepeat = errors.New("automaton: invalid repetition bounds")

	// ErrZeroWeight is returned by MostProbableSequence when no sequence has
	// non-zero weight.
	ErrZeroWeight = errors.New("automaton: every sequence has zero weight")

	// ErrBuilderUsed is returned when a Builder is used after GetAutomaton.
	ErrBuilderUsed = errors.New("automaton: builder already produced an automaton")
)
