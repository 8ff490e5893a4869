package search

import "github.com/katalvlaran/algokit/order"

// Interpolation searches seq, sorted ascending, by estimating the probe
// position from a linear interpolation between the bounding values instead of
// a midpoint. Average O(log log n) on uniformly distributed keys, degrading
// to O(n) on skewed ones. When the bracketing values are equal the
// interpolation is undefined; the probe falls back to a direct comparison
// instead of dividing by zero. Returns a matching index, or NotFound.
func Interpolation[T order.Number](seq []T, target T) int {
	lo, hi := 0, len(seq)-1
	for lo <= hi && seq[lo] <= target && target <= seq[hi] {
		if seq[lo] == seq[hi] {
			// Flat bracket: every remaining value is seq[lo].
			if seq[lo] == target {
				return lo
			}

			return NotFound
		}

		// Probe proportionally to where target sits between the bounds.
		// Convert before subtracting: a value span wider than the signed
		// range must not overflow in T.
		offset := (float64(target) - float64(seq[lo])) / (float64(seq[hi]) - float64(seq[lo]))
		pos := lo + int(offset*float64(hi-lo))
		// Rounding (or a non-finite offset) may land outside the bracket.
		if pos < lo {
			pos = lo
		} else if pos > hi {
			pos = hi
		}

		switch {
		case seq[pos] == target:
			return pos
		case seq[pos] < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}

	return NotFound
}
