// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, unweighted shortest-path distances, and parent links, plus a
// fewest-edge ShortestPath between two vertices.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex, expanding neighbors in adjacency-list order with a FIFO frontier.
//   - Returns a Result containing:
//   - Order: visit sequence (unreachable vertices are absent)
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - PathTo(dest): reconstruct the tree path start→dest.
//   - ShortestPath(g, start, end): the first path BFS discovers, minimal by
//     edge count; start == end short-circuits to the single-vertex path.
//
// Frontier discipline
//
//	A vertex moves Unvisited→Frontier when enqueued and Frontier→Visited when
//	dequeued and expanded; once Visited it never re-enters the frontier, so
//	cycles, self-loops, and parallel edges cannot cause re-visits or
//	non-termination.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound,
//	ErrOptionViolation, ErrNoPath (ShortestPath only, a normal outcome for an
//	unreachable end), context errors, or any error from an OnVisit hook.
package bfs
