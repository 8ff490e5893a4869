package sorting

import "github.com/katalvlaran/algokit/order"

// span is a pending [lo, hi] subrange on the explicit work stack.
type span struct{ lo, hi int }

// Quick sorts seq by divide and conquer around the middle element, placing
// elements equal to the pivot in a separate middle partition so runs of
// duplicates never recurse.
//
// Not stable. O(n log n) average, O(n²) worst under adversarial pivot values.
// Iterative: an explicit work stack replaces recursion, and the larger subrange
// is deferred while the smaller is processed next, bounding the stack to
// O(log n) spans regardless of input. Returns a new slice; seq is untouched.
func Quick[T any](seq []T, less order.Less[T]) ([]T, error) {
	if len(seq) < 2 {
		return clone(seq), nil
	}
	if less == nil {
		return nil, ErrInvalidInput
	}

	out := clone(seq)
	stack := make([]span, 0, 32)
	stack = append(stack, span{0, len(out) - 1})

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for s.lo < s.hi {
			ltEnd, gtStart := partition3(out, s.lo, s.hi, less)
			// Defer the larger side, keep looping on the smaller.
			if ltEnd-s.lo >= s.hi-gtStart {
				stack = append(stack, span{s.lo, ltEnd})
				s.lo = gtStart
			} else {
				stack = append(stack, span{gtStart, s.hi})
				s.hi = ltEnd
			}
		}
	}

	return out, nil
}

// partition3 performs a three-way (less / equal / greater) partition of
// a[lo..hi] around the middle element and returns (ltEnd, gtStart):
// a[lo..ltEnd] < pivot, a[ltEnd+1..gtStart-1] == pivot, a[gtStart..hi] > pivot.
func partition3[T any](a []T, lo, hi int, less order.Less[T]) (int, int) {
	pivot := a[lo+(hi-lo)/2]
	lt, i, gt := lo, lo, hi
	for i <= gt {
		switch {
		case less(a[i], pivot):
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case less(pivot, a[i]):
			a[i], a[gt] = a[gt], a[i]
			gt--
		default:
			i++
		}
	}

	return lt - 1, gt + 1
}
