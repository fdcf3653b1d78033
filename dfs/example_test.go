package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/dfs"
	"github.com/katalvlaran/wlang/weight"
)

// ExampleTopologicalSort orders the states of an acyclic automaton graph.
func ExampleTopologicalSort() {
	g := core.NewGraph[rune]()
	g.AddStates(3)
	_, _ = g.AddTransition(2, 1, weight.One, nil)
	_, _ = g.AddTransition(1, 0, weight.One, nil)

	order, err := dfs.TopologicalSort(g)
	fmt.Println(order, err)
	// Output:
	// [2 1 0] <nil>
}
