// Package dijkstra finds minimum-cost paths in a core.Graph.
//
// Weighted automata use it to find the most probable path: with cost
// -log(weight) every transition weight in (0, 1] maps to a non-negative cost,
// and the cheapest path is the most probable one. A transition weight above
// one yields a negative cost, which is rejected with ErrNegativeWeight.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    func(t core.Transition[L]) float64 { return -t.Weight.LogValue() },
//	    dijkstra.Source(0),
//	    dijkstra.WithReturnPath(),
//	)
//	path, err := dijkstra.PathTo(g, prev, target)
package dijkstra
