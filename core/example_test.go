package core_test

import (
	"fmt"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/weight"
)

// ExampleGraph builds the state graph of the language {"ab"}.
func ExampleGraph() {
	g := core.NewGraph[rune]()
	q0, q1, q2 := g.AddState(), g.AddState(), g.AddState()

	a, b := 'a', 'b'
	_, _ = g.AddTransition(q0, q1, weight.One, &a)
	_, _ = g.AddTransition(q1, q2, weight.One, &b)
	_ = g.SetEndWeight(q2, weight.One)

	for _, tr := range g.Transitions() {
		fmt.Printf("%d -%c-> %d\n", tr.From, *tr.Label, tr.To)
	}
	fmt.Println("accepting:", g.Stats().AcceptingCount)

	// Output:
	// 0 -a-> 1
	// 1 -b-> 2
	// accepting: 1
}
