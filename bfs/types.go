// Package bfs tunable options, sentinel errors, and the traversal Result.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrEndVertexNotFound is returned by ShortestPath when end is absent.
	ErrEndVertexNotFound = errors.New("bfs: end vertex not found")

	// ErrNoPath is returned by ShortestPath when end is unreachable from
	// start. It is a normal outcome, not a failure of the traversal.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid Option
// (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued and visited. If it returns
	// an error, the traversal aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor V) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no filtering, no-op visit hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:            context.Background(),
		OnVisit:        func(V, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ V) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from this callback stops the traversal.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// PathTo reconstructs the tree path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path, then flip
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
