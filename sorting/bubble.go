package sorting

import "github.com/katalvlaran/algokit/order"

// Bubble sorts seq by repeated adjacent swaps, stopping early once a full
// pass makes no swap.
//
// Stable. O(n²) time average and worst (O(n) on already-sorted input thanks
// to the early exit), O(1) extra space. Returns a new slice; seq is untouched.
func Bubble[T any](seq []T, less order.Less[T]) ([]T, error) {
	if len(seq) < 2 {
		return clone(seq), nil
	}
	if less == nil {
		return nil, ErrInvalidInput
	}

	out := clone(seq)
	// After pass p the last p elements are in final position.
	for limit := len(out) - 1; limit > 0; limit-- {
		swapped := false
		for i := 0; i < limit; i++ {
			if less(out[i+1], out[i]) {
				out[i], out[i+1] = out[i+1], out[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out, nil
}
