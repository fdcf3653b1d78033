// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores states in increasing distance from one or more start states,
// with optional direction and transition filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wlang/core"
)

// queueItem pairs a state index with its BFS depth.
type queueItem struct {
	q     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[L any] struct {
	graph *core.Graph[L]
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// MultiSource runs breadth-first search seeded with every state in starts
// at depth 0. Duplicate starts are visited once.
// Returns ErrGraphNil or ErrStartStateNotFound for invalid input.
func MultiSource[L any](g *core.Graph[L], starts []int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate start states
	for _, s := range starts {
		if !g.HasState(s) {
			return nil, fmt.Errorf("%w: %d", ErrStartStateNotFound, s)
		}
	}

	// Prepare walker
	n := g.StateCount()
	w := &walker[L]{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with start states (no parent)
	for _, s := range starts {
		if w.res.Depth[s] < 0 {
			w.enqueue(s, 0, -1)
		}
	}
	// Main loop
	return w.res, w.loop()
}

// Reachable returns a mask of the states reachable from starts.
func Reachable[L any](g *core.Graph[L], starts []int, opts ...Option) ([]bool, error) {
	res, err := MultiSource(g, starts, opts...)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, len(res.Depth))
	for _, q := range res.Order {
		mask[q] = true
	}

	return mask, nil
}

// enqueue marks q visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker[L]) enqueue(q, d, parent int) {
	w.res.Depth[q] = d
	w.res.Parent[q] = parent
	w.queue = append(w.queue, queueItem{q: q, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker[L]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.q)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors follows transitions in the configured direction, applies
// filtering, and enqueues each unseen neighbor.
func (w *walker[L]) enqueueNeighbors(item queueItem) error {
	var (
		ts  []core.Transition[L]
		err error
	)
	if w.opts.Reverse {
		ts, err = w.graph.Incoming(item.q)
	} else {
		ts, err = w.graph.Outgoing(item.q)
	}
	if err != nil {
		return fmt.Errorf("bfs: transitions of %d: %w", item.q, err)
	}

	for _, t := range ts {
		nbr := t.To
		if w.opts.Reverse {
			nbr = t.From
		}
		if !w.opts.FilterTransition(item.q, nbr, t.Weight) {
			continue
		}
		// first time seen?
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, item.depth+1, item.q)
		}
	}

	return nil
}
