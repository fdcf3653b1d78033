package wmap

import "errors"

var (
	// ErrNotPointMass is returned by Point when the map does not hold exactly one entry.
	ErrNotPointMass = errors.New("wmap: map is not a point mass")

	// ErrGroupsNotSupported is returned by Append and AppendSequence for a non-zero group.
	ErrGroupsNotSupported = errors.New("wmap: group tags are not supported")

	// ErrNotImplemented is returned by Repeat.
	ErrNotImplemented = errors.New("wmap: operation not implemented for sparse maps")

	// ErrDuplicateSequence is the panic value raised by FromDistinctWeights
	// when WithDistinctCheck is set and a sequence repeats.
	ErrDuplicateSequence = errors.New("wmap: duplicate sequence in distinct pairs")

	// ErrNegativeValue is returned by FromValues for a negative probability.
	ErrNegativeValue = errors.New("wmap: value is negative")
)
