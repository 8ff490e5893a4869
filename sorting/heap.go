package sorting

import "github.com/katalvlaran/algokit/order"

// Heap sorts seq by building a max-heap over its own copy, then repeatedly
// swapping the root to the shrinking tail and restoring the heap.
//
// Not stable. O(n log n) time in every case, O(1) extra space beyond the
// returned copy. Returns a new slice; seq is untouched.
func Heap[T any](seq []T, less order.Less[T]) ([]T, error) {
	if len(seq) < 2 {
		return clone(seq), nil
	}
	if less == nil {
		return nil, ErrInvalidInput
	}

	out := clone(seq)
	n := len(out)

	// Heapify bottom-up from the last parent.
	for i := heapParent(n - 1); i >= 0; i-- {
		siftDown(out, i, n, less)
	}
	// Extract max to the tail until one element remains.
	for end := n - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		siftDown(out, 0, end, less)
	}

	return out, nil
}

func heapParent(i int) int { return (i - 1) / 2 }
func heapLeft(i int) int   { return i*2 + 1 }

// siftDown restores the max-heap property for a[root:n) assuming both
// subtrees of root are already heaps.
func siftDown[T any](a []T, root, n int, less order.Less[T]) {
	for {
		child := heapLeft(root)
		if child >= n {
			return
		}
		if r := child + 1; r < n && less(a[child], a[r]) {
			child = r
		}
		if !less(a[root], a[child]) {
			return
		}
		a[root], a[child] = a[child], a[root]
		root = child
	}
}
