// Package search provides six searching algorithms over finite sequences,
// returning an index or the NotFound sentinel — absence is a normal outcome
// here, never an error.
//
// What
//
//   - Linear: first match, left to right, no order precondition.
//   - Binary: any matching index over a sorted sequence.
//   - BinaryLeftmost / BinaryRightmost: bound a run of duplicates.
//   - Ternary: two probes per step instead of one.
//   - Exponential: bracket by doubling probes, then Binary inside the bracket.
//   - Interpolation: probe by linear interpolation between the bound values.
//
// Contracts (n = len(seq), i = index of the match)
//
//	Algorithm      Time                          Precondition
//	Linear         O(n)                          none
//	Binary         O(log n)                      sorted under less
//	Leftmost/…most O(log n)                      sorted under less
//	Ternary        O(log₃ n)                     sorted under less
//	Exponential    O(log i)                      sorted under less
//	Interpolation  O(log log n) avg, O(n) worst  sorted, numeric, ~uniform keys
//
// Every search returns NotFound when the target is absent. Calling an ordered
// search on an unsorted sequence is caller error: the result is unspecified
// but the call still terminates without panicking. Cheaply checkable
// degenerate cases — an empty sequence, equal bracketing values in
// interpolation — return NotFound rather than dividing by zero or crashing.
// No search mutates its input.
package search
