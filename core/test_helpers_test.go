// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wlang/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep method tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/weight"
)

// Label is the label type used across core tests.
type Label = rune

// Common labels used across core tests.
var (
	LabelA = Label('a')
	LabelB = Label('b')
)

// Common weights used across core tests (avoid magic numbers in test bodies).
var (
	WeightHalf    = weight.FromValue(0.5)
	WeightQuarter = weight.FromValue(0.25)
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// NewGraphFull returns a Graph with loops and groups enabled.
func NewGraphFull() *core.Graph[Label] {
	return core.NewGraph[Label](core.WithLoops(), core.WithGroups())
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue fails the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse fails the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualInts fails the test if the slices differ.
func MustEqualInts(t *testing.T, got, want []int, op string) {
	t.Helper()

	if slices.Equal(got, want) {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// TransitionIDs extracts IDs in slice order.
func TransitionIDs(ts []core.Transition[Label]) []int {
	ids := make([]int, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}

	return ids
}
