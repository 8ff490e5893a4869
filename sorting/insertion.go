package sorting

import "github.com/katalvlaran/algokit/order"

// Insertion sorts seq by growing a sorted prefix one element at a time,
// shifting larger elements right to make room.
//
// Stable: the inserted element stops before any equal element, preserving
// input order among equals. O(n²) worst, O(n) on nearly-sorted input,
// O(1) extra space. Returns a new slice; seq is untouched.
func Insertion[T any](seq []T, less order.Less[T]) ([]T, error) {
	if len(seq) < 2 {
		return clone(seq), nil
	}
	if less == nil {
		return nil, ErrInvalidInput
	}

	out := clone(seq)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		// Strict less keeps equal elements in place.
		for j >= 0 && less(key, out[j]) {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}

	return out, nil
}
