package search

// Linear scans seq left to right and returns the index of the first element
// equal to target, or NotFound. O(n); the only search with no order
// precondition.
func Linear[T comparable](seq []T, target T) int {
	for i, v := range seq {
		if v == target {
			return i
		}
	}

	return NotFound
}
