// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for state/transition lifecycle and query APIs.
//   - Validate constraint enforcement (weights, loops, groups).

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/weight"
)

// TestGraph_States verifies state creation, end weights and lookups.
func TestGraph_States(t *testing.T) {
	g := core.NewGraph[Label]()

	// Stage 1: dense indices.
	MustEqualInt(t, g.AddState(), 0, "AddState first")
	MustEqualInt(t, g.AddStates(3), 1, "AddStates(3) first index")
	MustEqualInt(t, g.StateCount(), 4, "StateCount")
	MustTrue(t, g.HasState(3), "HasState(3)")
	MustFalse(t, g.HasState(4), "HasState(4)")
	MustFalse(t, g.HasState(-1), "HasState(-1)")

	// Stage 2: new states are not accepting.
	w, err := g.EndWeight(2)
	MustNoError(t, err, "EndWeight(2)")
	MustTrue(t, w.IsZero(), "new state end weight is Zero")

	// Stage 3: end weight round-trip and validation.
	MustNoError(t, g.SetEndWeight(2, WeightHalf), "SetEndWeight(2)")
	w, _ = g.EndWeight(2)
	MustTrue(t, w == WeightHalf, "EndWeight(2) after set")
	MustErrorIs(t, g.SetEndWeight(9, weight.One), core.ErrStateNotFound, "SetEndWeight(9)")
	MustErrorIs(t, g.SetEndWeight(0, weight.FromLogValue(math.NaN())), core.ErrBadWeight, "SetEndWeight(NaN)")
	_, err = g.EndWeight(-1)
	MustErrorIs(t, err, core.ErrStateNotFound, "EndWeight(-1)")

	// Stage 4: States() snapshot is in index order.
	states := g.States()
	MustEqualInt(t, len(states), 4, "len(States)")
	for i, s := range states {
		MustEqualInt(t, s.Index, i, "States()[i].Index")
	}
}

// TestGraph_TransitionConstraints verifies AddTransition constraint enforcement.
func TestGraph_TransitionConstraints(t *testing.T) {
	// Stage 1: unknown endpoints.
	g := core.NewGraph[Label]()
	q0, q1 := g.AddState(), g.AddState()
	_, err := g.AddTransition(q0, 7, weight.One, &LabelA)
	MustErrorIs(t, err, core.ErrStateNotFound, "AddTransition(0,7)")
	_, err = g.AddTransition(-1, q1, weight.One, &LabelA)
	MustErrorIs(t, err, core.ErrStateNotFound, "AddTransition(-1,1)")

	// Stage 2: NaN weights.
	_, err = g.AddTransition(q0, q1, weight.FromLogValue(math.NaN()), nil)
	MustErrorIs(t, err, core.ErrBadWeight, "AddTransition(NaN)")

	// Stage 3: loops require WithLoops.
	_, err = g.AddTransition(q1, q1, weight.One, &LabelA)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddTransition(1,1) without loops")

	// Stage 4: groups require WithGroups and must be non-negative.
	_, err = g.AddTransition(q0, q1, weight.One, &LabelA, core.WithGroup(2))
	MustErrorIs(t, err, core.ErrGroupNotAllowed, "AddTransition group 2 without groups")
	full := NewGraphFull()
	full.AddStates(2)
	_, err = full.AddTransition(0, 1, weight.One, &LabelA, core.WithGroup(-1))
	MustErrorIs(t, err, core.ErrNegativeGroup, "AddTransition group -1")
	id, err := full.AddTransition(1, 1, weight.One, &LabelB, core.WithGroup(3))
	MustNoError(t, err, "AddTransition loop with group")
	tr, err := full.Transition(id)
	MustNoError(t, err, "Transition(id)")
	MustEqualInt(t, tr.Group, 3, "Transition.Group")

	// Stage 5: nothing leaked from rejected insertions.
	MustEqualInt(t, g.TransitionCount(), 0, "TransitionCount after rejections")
}

// TestGraph_Adjacency verifies ordering of Outgoing/Incoming.
func TestGraph_Adjacency(t *testing.T) {
	g := NewGraphFull()
	g.AddStates(3)

	// Parallel transitions and an epsilon.
	e0, _ := g.AddTransition(0, 2, WeightHalf, &LabelA)
	e1, _ := g.AddTransition(0, 1, WeightQuarter, nil)
	e2, _ := g.AddTransition(0, 2, weight.One, &LabelB)
	e3, _ := g.AddTransition(1, 2, weight.One, &LabelA)

	outs, err := g.Outgoing(0)
	MustNoError(t, err, "Outgoing(0)")
	MustEqualInts(t, TransitionIDs(outs), []int{e0, e1, e2}, "Outgoing(0) IDs")
	MustTrue(t, outs[1].IsEpsilon(), "e1 is epsilon")
	MustFalse(t, outs[0].IsEpsilon(), "e0 is labeled")

	ins, _ := g.Incoming(2)
	MustEqualInts(t, TransitionIDs(ins), []int{e0, e2, e3}, "Incoming(2) IDs")

	_, err = g.Outgoing(5)
	MustErrorIs(t, err, core.ErrStateNotFound, "Outgoing(5)")
	_, err = g.Transition(99)
	MustErrorIs(t, err, core.ErrTransitionNotFound, "Transition(99)")
}

// TestGraph_CloneAndSubgraph verifies deep copies and induced views.
func TestGraph_CloneAndSubgraph(t *testing.T) {
	g := NewGraphFull()
	g.AddStates(4)
	_ = g.SetEndWeight(3, weight.One)
	_, _ = g.AddTransition(0, 1, weight.One, &LabelA)
	_, _ = g.AddTransition(1, 3, WeightHalf, &LabelB)
	_, _ = g.AddTransition(0, 2, weight.Zero, &LabelB)
	_, _ = g.AddTransition(2, 3, weight.One, nil)

	// Clone is independent.
	c := g.Clone()
	c.AddState()
	_, _ = c.AddTransition(3, 4, weight.One, nil)
	MustEqualInt(t, g.StateCount(), 4, "source StateCount after clone mutation")
	MustEqualInt(t, g.TransitionCount(), 4, "source TransitionCount after clone mutation")
	MustTrue(t, c.Looped() && c.Grouped(), "clone keeps flags")

	// CloneEmpty keeps states and end weights only.
	e := g.CloneEmpty()
	MustEqualInt(t, e.StateCount(), 4, "empty clone StateCount")
	MustEqualInt(t, e.TransitionCount(), 0, "empty clone TransitionCount")
	w, err := e.EndWeight(3)
	MustNoError(t, err, "EndWeight(3)")
	MustTrue(t, w.IsOne(), "empty clone keeps end weights")

	// Drop state 2 and zero-weight transitions.
	sub, remap := core.Subgraph(g,
		func(s core.State) bool { return s.Index != 2 },
		func(tr core.Transition[Label]) bool { return !tr.Weight.IsZero() },
	)
	MustEqualInts(t, remap, []int{0, 1, -1, 2}, "remap")
	MustEqualInt(t, sub.StateCount(), 3, "sub StateCount")
	MustEqualInt(t, sub.TransitionCount(), 2, "sub TransitionCount")
	w, _ = sub.EndWeight(2)
	MustTrue(t, w.IsOne(), "end weight follows remap")

	stats := g.Stats()
	MustEqualInt(t, stats.EpsilonCount, 1, "Stats.EpsilonCount")
	MustEqualInt(t, stats.AcceptingCount, 1, "Stats.AcceptingCount")
	MustEqualInt(t, stats.TaggedCount, 0, "Stats.TaggedCount")
}
