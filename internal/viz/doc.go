// Package viz provides the interactive terminal visualizer for sortvis.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: drives an engine through a player and renders bars colored by
//     cursor role, a legend and a metrics panel
//   - [Canvas]: braille dot plot for large sequences
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space   - Play/Pause
//	N/Right - Single step while paused
//	R       - Reset (pauses)
//	S       - Shuffle
//	Tab/1-4 - Switch algorithm (resets and pauses)
//	+/-     - Speed up/down
//	T       - Cycle color themes
//	V       - Toggle bars/dot plot
//	?       - Show help overlay
package viz
