// Package core defines the adjacency-list Graph type the traversal packages
// operate over, generic over any comparable vertex identifier.
//
// What
//
//   - Graph[V]: vertex → ordered adjacency sequence, insertion-ordered on both
//     axes, guarded by an RWMutex.
//   - AddVertex / AddEdge / AddEdges: build the graph; endpoints are created
//     on demand; self-loops and parallel edges are preserved, never
//     deduplicated.
//   - HasVertex / Vertices / Neighbors / VertexCount / EdgeCount: queries;
//     slice-returning queries hand back copies, so callers cannot alias
//     internal state.
//
// Directedness
//
//	Graphs are undirected by default: AddEdge(u, v) records v in u's adjacency
//	and u in v's. With WithDirected(true) only the u→v arc is recorded, and a
//	symmetric pair takes two AddEdge calls.
//
// Determinism
//
//	Vertices and Neighbors report in insertion/call order, so every traversal
//	over the same build sequence is fully reproducible.
//
// Errors
//
//	ErrVertexNotFound — Neighbors was asked about a vertex the graph lacks.
package core
