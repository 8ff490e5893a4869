package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// frame is one pending visit on the explicit work stack.
type frame[V comparable] struct {
	v      V
	depth  int
	parent V
	isRoot bool
}

// DFS performs depth-first search on g starting from start, applying any
// number of functional Options. The traversal is iterative: an explicit work
// stack replaces recursion, and each adjacency row is pushed in reverse so
// neighbors pop in forward order, matching the pre-order a recursive DFS
// would produce. Returns ErrGraphNil or ErrStartVertexNotFound for invalid
// input, ErrOptionViolation for bad options, or any user-supplied hook error.
func DFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph and options
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

	// 2. Initialize result with capacity hints
	n := g.VertexCount()
	res := &Result[V]{
		Order:  make([]V, 0, n),
		Depth:  make(map[V]int, n),
		Parent: make(map[V]V, n),
	}
	visited := make(map[V]bool, n)

	// 3. Seed the stack with the root frame
	stack := make([]frame[V], 0, n)
	stack = append(stack, frame[V]{v: start, isRoot: true})

	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A vertex may be pushed more than once before its first pop;
		// only the first pop expands it.
		if visited[f.v] {
			continue
		}
		visited[f.v] = true
		res.Depth[f.v] = f.depth
		if !f.isRoot {
			res.Parent[f.v] = f.parent
		}

		res.Order = append(res.Order, f.v)
		if err := o.OnVisit(f.v, f.depth); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit error at %v: %w", f.v, err)
		}

		if o.MaxDepth > 0 && f.depth >= o.MaxDepth {
			continue
		}

		neighbors, err := g.Neighbors(f.v)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %v: %w", f.v, err)
		}

		// 4. Push in reverse so the first-listed neighbor pops first.
		for i := len(neighbors) - 1; i >= 0; i-- {
			nbr := neighbors[i]
			if visited[nbr] || !o.FilterNeighbor(f.v, nbr) {
				continue
			}
			stack = append(stack, frame[V]{v: nbr, depth: f.depth + 1, parent: f.v})
		}
	}

	return res, nil
}
