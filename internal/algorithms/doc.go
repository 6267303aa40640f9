// Package algorithms implements resumable sorting algorithms.
//
// Each algorithm is a [Stepper] that performs exactly one primitive unit of
// work per call to Step: a comparison (together with the swap or scratch
// write it decides), a swap, or a bookkeeping transition such as popping a
// pending range. Recursion is never used; the state a recursive
// implementation would keep on the call stack lives in the stepper itself,
// so a run can stop between any two steps and resume later.
//
// The algorithm set is closed. [Type] enumerates it and [New] dispatches on
// it:
//
//   - [Quick]: Lomuto partitioning over an explicit range stack
//   - [Merge]: bottom-up merging through the sequence scratch buffer
//   - [Bubble]: adjacent compare-and-swap with a shrinking bound
//   - [Heap]: build-max-heap followed by repeated extraction
package algorithms
