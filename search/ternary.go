package search

import "github.com/katalvlaran/algokit/order"

// Ternary searches seq, sorted under less, by splitting the candidate range
// into three parts with two probes per step. Correctness is identical to
// Binary; only the constant factor differs (log₃ n steps of two comparisons
// each). Returns the index of some element equal to target, or NotFound.
func Ternary[T any](seq []T, target T, less order.Less[T]) int {
	lo, hi := 0, len(seq)-1
	for lo <= hi {
		third := (hi - lo) / 3
		m1 := lo + third
		m2 := hi - third

		if less.Equal(seq[m1], target) {
			return m1
		}
		if less.Equal(seq[m2], target) {
			return m2
		}

		switch {
		case less(target, seq[m1]):
			hi = m1 - 1
		case less(seq[m2], target):
			lo = m2 + 1
		default:
			lo, hi = m1+1, m2-1
		}
	}

	return NotFound
}
