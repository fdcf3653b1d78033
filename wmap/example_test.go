package wmap_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wlang/wmap"
)

// ExampleFamily_FromValues normalizes a small language and multiplies it
// with another one.
func ExampleFamily_FromValues() {
	f := wmap.Strings()
	m, err := f.FromValues([]wmap.ValuePair[string]{
		{Sequence: "ab", Value: 2},
		{Sequence: "b", Value: 6},
		{Sequence: "ab", Value: 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, _, _ := m.TryNormalizeValues()
	for s, w := range n.Entries() {
		fmt.Printf("%s %.1f\n", s, w.Value())
	}

	other := f.FromPoint("b")
	fmt.Printf("product P(b) = %.1f\n", math.Exp(n.Product(other).GetLogValue("b")))
	// Output:
	// ab 0.4
	// b 0.6
	// product P(b) = 0.6
}
