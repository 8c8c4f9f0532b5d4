// Package loop drives a simulation from per-frame callbacks.
//
// The host calls Scheduler.Frame once per display refresh with a
// millisecond timestamp. Elapsed time accumulates across frames and, once
// it exceeds the step, exactly one logical update runs. Rendering happens
// on every frame whether or not an update ran.
package loop

import "math"

// MaxFPS caps the reported frame rate.
const MaxFPS = 1_000_000

// FrameTiming converts two frame timestamps in milliseconds into the
// elapsed seconds and the instantaneous frames per second.
// A non-positive interval yields zero for both. The rate saturates at
// MaxFPS for intervals too small to measure.
func FrameTiming(prev, cur float64) (delta float64, fps int) {
	delta = (cur - prev) / 1000
	if delta <= 0 || math.IsNaN(delta) {
		return 0, 0
	}
	rate := math.Round(1 / delta)
	if math.IsInf(rate, 0) || rate > MaxFPS {
		return delta, MaxFPS
	}
	return delta, int(rate)
}
