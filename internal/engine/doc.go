// Package engine drives a resumable sorting run.
//
// [Engine] owns the [sequence.Sequence] and the active
// [algorithms.Stepper], and exposes the command surface a visualizer needs:
//
//	e, _ := engine.New(logger, engine.DefaultConfig())
//	e.SetAlgorithm(algorithms.Heap)
//	for e.Step() {
//		draw(e.State(), e.Cursors())
//	}
//
// Only time spent inside Step is accounted as elapsed time, so pausing a run
// (not calling Step) never inflates the metrics.
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. A single caller (a UI loop or a
// scheduler) is expected to issue every command.
package engine
