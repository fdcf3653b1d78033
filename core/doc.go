// Package core provides the thread-safe state graph on which weighted
// automata are built.
//
// A Graph[L] G = (Q, T) holds:
//
//   - States, identified by dense integer indices 0..n-1, each carrying an
//     end (accepting) weight. A state is accepting iff its end weight is not Zero.
//   - Transitions, identified by dense integer IDs in insertion order, each
//     carrying a log-domain weight, an optional label *L (nil = epsilon) and a
//     group tag (0 = untagged).
//
// The graph is always directed and always allows parallel transitions; two
// flags are configurable:
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddTransition(q,q,…) → ErrLoopNotAllowed.
//
//	– WithGroups()
//	    Permits non-zero group tags (WithGroup); otherwise → ErrGroupNotAllowed.
//
// Core Methods:
//
//	// State lifecycle
//	AddState() int                                  // O(1) amortized
//	HasState(q int) bool                            // O(1)
//	SetEndWeight(q int, w weight.Weight) error      // O(1)
//
//	// Transition lifecycle
//	AddTransition(from, to int, w weight.Weight, label *L, opts ...TransitionOption) (int, error) // O(1)
//
//	// Query
//	Outgoing(q int) ([]Transition[L], error)        // ID order
//	Incoming(q int) ([]Transition[L], error)        // ID order
//	States() []State, Transitions() []Transition[L] // index / ID order
//
//	// Views
//	Clone() *Graph[L], CloneEmpty() *Graph[L]
//	Subgraph(g, keepState, keepTransition) (*Graph[L], []int)
//
// Determinism: every enumeration is ordered by index or ID, so algorithms
// built on top of core produce reproducible automata.
//
// Concurrency: muState guards states, muTrans guards transitions and
// adjacency. Readers never hold both locks at once.
//
// Errors:
//
//	ErrStateNotFound      – index outside 0..n-1
//	ErrTransitionNotFound – transition ID outside 0..m-1
//	ErrBadWeight          – NaN weight
//	ErrLoopNotAllowed     – self-loop when loops disabled
//	ErrGroupNotAllowed    – non-zero group when groups disabled
//	ErrNegativeGroup      – negative group id
package core
