// Package pattern holds the per-pixel generators. Every generator writes
// into a caller-owned frame.Buffer; tick counters and random sources come in
// from the caller so a fixed seed reproduces the exact frame sequence.
package pattern

import "github.com/coff33ninja/ledmatrix/internal/frame"

// Params carries the knobs shared by all generators. Speed is 0..100;
// Brightness scales one-shot fills, the dispatcher applies the global scale.
type Params struct {
	Color      frame.RGB
	Brightness uint8
	Speed      int
}

func clampSpeed(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
