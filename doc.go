// Package wlang is a toolkit for weighted languages: assignments of a
// non-negative weight to every sequence over an alphabet, with all
// arithmetic carried in log-space.
//
// 🚀 Two interchangeable representations
//
//	• wmap.Map        – a sparse table sequence → weight, exact and cheap
//	• automaton.Automaton – a weighted finite-state automaton, for cyclic
//	                    languages, repetition and similarity scoring
//
// Both satisfy WeightFunction, so generic code (Probability, Mixture, the
// cross-representation tests) works with either. A map converts to an
// equivalent automaton with AsAutomaton.
//
// Under the hood:
//
//	weight/      log-domain semiring value (Zero, One, Mul, Add)
//	seq/         sequence strategies: strings, slices, ordered slices
//	elemdist/    sparse element distributions used as transition labels
//	core/        thread-safe state graph of an automaton
//	bfs/, dfs/, dijkstra/   reachability, topological order, best path
//	automaton/   builder and automaton algebra, path sums, similarity
//	wmap/        sparse maps, their families and storage hooks
//	cmd/wlang    command-line front-end over JSON pair files
//
// Quick example:
//
//	f := wmap.Strings()
//	m, _ := f.FromValues([]wmap.ValuePair[string]{{Sequence: "ab", Value: 0.5}})
//	a := m.AsAutomaton()
//	rep, _ := a.Repeat(1, -1) // (ab)+
//
//	go get github.com/katalvlaran/wlang
package wlang
