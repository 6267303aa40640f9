// Package tui renders engine progress on a plain terminal without taking it
// over: [StepPrinter] writes a trace line per step and [LiveRenderer] redraws
// an ASCII bar chart with ANSI escapes. Both implement engine.Observer.
package tui
