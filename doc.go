// Package algokit is a small, generic toolkit of interchangeable sorting,
// searching, and graph-traversal algorithms, each with an explicit complexity
// and correctness contract, plus a harness that times and validates competing
// implementations against a trusted reference.
//
// 🚀 What is algokit?
//
//	A modern, zero-runtime-dependency library that brings together:
//		• Ordering contract: one comparison abstraction shared by every algorithm
//		• Sorting: bubble, insertion, quick, merge, heap, counting
//		• Searching: linear, binary (exact/leftmost/rightmost), ternary,
//		  exponential, interpolation
//		• Traversals: BFS, DFS, shortest path by edge count
//		• Harness: wall-clock timing + correctness validation, panic-isolated
//
// ✨ Why choose algokit?
//
//   - Explicit contracts – stability, complexity and failure modes documented per algorithm
//   - Borrowed inputs – non-in-place by default; your slice is never mutated
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – traversal hooks (OnVisit, FilterNeighbor…) for custom logic
//
// Under the hood, everything is organized per concern:
//
//	order/   — comparison/equality contract all algorithms operate over
//	sorting/ — six sorts behind one signature
//	search/  — six searches over sorted (and unsorted) sequences
//	core/    — adjacency-list Graph shared by the traversals
//	bfs/     — breadth-first traversal and fewest-edge shortest path
//	dfs/     — iterative depth-first traversal
//	harness/ — benchmark runner and static algorithm registry
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	bfs.BFS from A visits A, B, C, D in non-decreasing distance.
//
// Dive into the per-package docs for contracts, options, and examples.
//
//	go get github.com/katalvlaran/algokit
package algokit
