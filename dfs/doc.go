// Package dfs provides iterative depth-first search over a core.Graph,
// returning visit order, discovery depth, and parent links.
//
// What
//
//   - Explore as deep as possible along each branch before backtracking,
//     driven by an explicit work stack rather than recursion, so stack depth
//     on large or degenerate (chain-shaped) graphs is bounded by the heap,
//     not the goroutine stack.
//   - Neighbors are pushed in reverse adjacency order so they pop in forward
//     order, giving the canonical left-to-right pre-order a recursive DFS
//     would produce.
//   - Returns a Result (same shape as package bfs): Order, Depth, Parent.
//
// Frontier discipline
//
//	A vertex moves Unvisited→Frontier when pushed and Frontier→Visited when
//	popped and expanded; once Visited it is never expanded again, so cycles,
//	self-loops, and parallel edges cannot cause re-visits or non-termination.
//	DFS visits exactly the set of vertices BFS visits from the same start;
//	only the order differs.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the work stack in the worst case, plus O(V) maps.
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, context errors,
//	or any error from an OnVisit hook.
package dfs
