// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/dijkstra"
	"github.com/katalvlaran/wlang/weight"
)

// ExampleDijkstra finds the most probable route through a small graph.
func ExampleDijkstra() {
	g := core.NewGraph[rune]()
	g.AddStates(3)
	_, _ = g.AddTransition(0, 1, weight.FromValue(0.5), nil)
	_, _ = g.AddTransition(1, 2, weight.FromValue(0.5), nil)
	_, _ = g.AddTransition(0, 2, weight.FromValue(0.125), nil)

	dist, prev, err := dijkstra.Dijkstra(g,
		func(t core.Transition[rune]) float64 { return -t.Weight.LogValue() },
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(g, prev, 2)
	fmt.Printf("p=%.2f via transitions %v\n", math.Exp(-dist[2]), path)
	// Output:
	// p=0.25 via transitions [0 1]
}
