package bfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	opts    Options[V]
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
	// stop, when set, halts the loop as soon as this vertex is discovered.
	stop    *V
	stopped bool
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options. Vertices are visited in non-decreasing distance from
// start; unreachable vertices are absent from the Result.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	w, err := newWalker(g, start, nil, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath runs BFS from start with predecessor tracking and returns the
// first path discovered to end, which is minimal by edge count because BFS
// expands the frontier in non-decreasing distance order. If start == end the
// single-vertex path is returned immediately without traversal. Returns
// ErrNoPath when end is unreachable.
func ShortestPath[V comparable](g *core.Graph[V], start, end V, opts ...Option[V]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(end) {
		return nil, ErrEndVertexNotFound
	}
	if start == end {
		if !g.HasVertex(start) {
			return nil, ErrStartVertexNotFound
		}

		return []V{start}, nil
	}

	w, err := newWalker(g, start, &end, opts)
	if err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}

	path, err := w.res.PathTo(end)
	if err != nil {
		return nil, ErrNoPath
	}

	return path, nil
}

// newWalker validates inputs and seeds the frontier with start.
func newWalker[V comparable](g *core.Graph[V], start V, stop *V, opts []Option[V]) (*walker[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		stop:    stop,
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
	w.enqueue(start, 0)

	return w, nil
}

// enqueue moves v from Unvisited to the Frontier at depth d.
func (w *walker[V]) enqueue(v V, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
	if w.stop != nil && v == *w.stop {
		w.stopped = true
	}
}

// loop processes the queue until empty, error, cancellation, or early stop.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 && !w.stopped {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		// Frontier → Visited
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors expands item's adjacency row in order, applying filtering
// and MaxDepth, and moves each unseen neighbor into the frontier.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.v, err)
	}

	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.v
			w.enqueue(nbr, nextDepth)
			if w.stopped {
				return nil
			}
		}
	}

	return nil
}
