// Package harness times and validates competing algorithm implementations of
// the same category against a trusted reference.
//
// What
//
//   - RunSorts: run each named sort on a private copy of one input, measure
//     wall-clock duration, and flag whether the output matches the stdlib
//     reference sort element for element.
//   - RunSearches: run each named search against one input and target and
//     flag whether the returned index is any correct answer (or NotFound on
//     an absent target).
//   - Registry: an insertion-ordered name→algorithm table, the static
//     replacement for discovering algorithms dynamically at runtime.
//
// Isolation
//
//	A sort that returns an error — or panics — is recorded with Correct=false
//	and the captured error; it never aborts the benchmark of the remaining
//	entries, and never propagates to the caller.
//
// Determinism
//
//	Entries run sequentially, in the order given, on the same goroutine:
//	wall-clock timing of co-scheduled work would be unreliable. Results
//	preserve the input order of the algorithm list; no ranking is applied —
//	presentation is the caller's business.
//
// The input sequence is borrowed read-only: every run gets its own copy, so a
// misbehaving in-place implementation cannot poison the runs after it.
// Logging is off by default; supply WithLogger for statoor-style structured
// progress via log/slog.
package harness
