// Package sequence holds the working state of a sorting run.
//
// A [Sequence] owns everything the steppers mutate:
//
//   - the integer array being sorted
//   - a scratch buffer of the same length (used by merge sort)
//   - the rolling [Metrics]: comparisons, swaps, scratch writes and active time
//   - the highlight set describing the most recent step
//
// Steppers mutate a Sequence only through its primitive operations
// ([Sequence.Less], [Sequence.Swap], [Sequence.Stage], [Sequence.Commit]) so
// that every comparison and swap is counted exactly once.
//
// # Thread Safety
//
// Sequence is NOT thread-safe. It is owned by a single engine and driven by a
// single caller.
package sequence
