package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
}

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// Graph is an insertion-ordered adjacency list over comparable vertex IDs.
//
// Self-loops and parallel edges are permitted and preserved exactly as added.
// All methods are safe for concurrent use; reads return copies.
type Graph[V comparable] struct {
	mu       sync.RWMutex
	directed bool
	adj      map[V][]V
	order    []V // vertex insertion order
}

// NewGraph constructs an empty Graph, applying any number of GraphOptions.
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed: cfg.directed,
		adj:      make(map[V][]V),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[V]) Directed() bool { return g.directed }

// AddVertex ensures v exists, preserving its insertion position.
// Adding an existing vertex is a no-op.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(v)
}

// AddEdge records the edge u→v, creating missing endpoints. On an undirected
// graph the reverse arc v→u is recorded as well (u==v self-loops are recorded
// once). Repeated calls append parallel edges.
func (g *Graph[V]) AddEdge(u, v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(u)
	g.ensure(v)
	g.adj[u] = append(g.adj[u], v)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], u)
	}
}

// AddEdges records one edge u→v per listed neighbor, in the given order.
func (g *Graph[V]) AddEdges(u V, vs ...V) {
	for _, v := range vs {
		g.AddEdge(u, v)
	}
}

// ensure registers v if unseen. Caller holds the write lock.
func (g *Graph[V]) ensure(v V) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
		g.order = append(g.order, v)
	}
}

// HasVertex reports whether v exists in the graph.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of recorded arcs (an undirected edge counts
// its two arcs once; a self-loop counts once).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := 0
	loops := 0
	for v, row := range g.adj {
		arcs += len(row)
		for _, w := range row {
			if w == v {
				loops++
			}
		}
	}
	if g.directed {
		return arcs
	}

	return (arcs + loops) / 2
}

// Neighbors returns a copy of v's adjacency row in edge insertion order,
// or ErrVertexNotFound if v is absent.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]V, len(row))
	copy(out, row)

	return out, nil
}
