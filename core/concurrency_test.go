// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlang/core"
	"github.com/katalvlaran/wlang/weight"
)

// TestConcurrentAddTransition ensures that concurrent AddTransition calls
// from one hub state are safe and all transitions appear.
func TestConcurrentAddTransition(t *testing.T) {
	g := core.NewGraph[Label]()
	hub := g.AddState()
	first := g.AddStates(NConcurrentAdds)

	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)
	errs := make(chan error, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(to int) {
			defer wg.Done()
			_, err := g.AddTransition(hub, to, weight.One, &LabelA)
			errs <- err
		}(first + i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	outs, err := g.Outgoing(hub)
	require.NoError(t, err)
	require.Len(t, outs, NConcurrentAdds)
}

// TestConcurrentReadersAndCloners validates that concurrent reads and clones
// do not race with state growth.
func TestConcurrentReadersAndCloners(t *testing.T) {
	g := NewGraphFull()
	q := g.AddState()
	for i := 0; i < NReaders; i++ {
		_, _ = g.AddTransition(q, q, weight.One, &LabelB)
	}

	var wg sync.WaitGroup
	wg.Add(NReaders + NCloners + 1)
	counts := make(chan int, NReaders)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			outs, _ := g.Outgoing(q)
			counts <- len(outs)
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	go func() {
		defer wg.Done()
		g.AddStates(10)
	}()
	wg.Wait()
	close(counts)

	for n := range counts {
		require.Equal(t, NReaders, n)
	}
}
