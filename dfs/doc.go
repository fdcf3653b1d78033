// Package dfs provides depth-first algorithms over a core.Graph: filtered
// traversal, topological sorting, cycle detection and strongly connected
// components.
//
// Weighted automata use it to decide whether the useful part of an automaton
// is acyclic (finite language, exact path enumeration, dynamic-programming
// path sums), to order states for those dynamic programs, and to isolate the
// components of a cyclic system whose path sums diverge.
//
// API
//
//	DFS(g, start, opts...)        (*DFSResult, error)
//	TopologicalSort(g)            ([]int, error)        // ErrCycleDetected on cycles
//	HasCycle(g)                   (bool, error)
//	StronglyConnected(g)          ([][]int, error)      // condensation order
//
// Determinism
//
//	core.Graph yields transitions in ID order and states in index order, so
//	every result of this package is reproducible.
package dfs
