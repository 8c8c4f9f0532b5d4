package loop

import (
	"context"
	"strconv"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// Simulation is the logical state advanced by the scheduler.
type Simulation interface {
	// Update performs one logical tick.
	Update()
	// Over reports whether a termination condition holds.
	Over() bool
	// EndTick clears per-tick input state after an update.
	EndTick()
}

// Renderer paints the current state.
type Renderer interface {
	Render()
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func()

// Render calls f().
func (f RendererFunc) Render() {
	f()
}

// State is the scheduler's phase.
type State int

const (
	// StateAccumulating waits for enough elapsed time to run an update.
	StateAccumulating State = iota
	// StateReady is entered while a logical update runs.
	StateReady
	// StateHalted is terminal: the simulation ended and no further
	// frames are requested.
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateAccumulating:
		return "accumulating"
	case StateReady:
		return "ready"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// DefaultStep is the logical update interval in seconds.
const DefaultStep = 0.1

// Scheduler decouples variable frame timing from a fixed update rate.
// It is not safe for concurrent use; the host must call Frame from a
// single goroutine, which also serializes access to the simulation.
type Scheduler struct {
	sim      Simulation
	renderer Renderer
	fpsSink  core.TextSink
	step     float64

	state   State
	started bool
	last    float64 // Previous frame timestamp, ms
	acc     float64 // Accumulated seconds since the last update
	fps     int
	frames  uint64
	ticks   uint64
}

// NewScheduler creates a scheduler. A nil fps sink discards fps updates;
// a non-positive step uses DefaultStep.
func NewScheduler(sim Simulation, renderer Renderer, fpsSink core.TextSink, step float64) *Scheduler {
	if fpsSink == nil {
		fpsSink = core.DiscardText
	}
	if step <= 0 {
		step = DefaultStep
	}
	return &Scheduler{
		sim:      sim,
		renderer: renderer,
		fpsSink:  fpsSink,
		step:     step,
	}
}

// Frame handles one frame callback at timestamp ts (milliseconds) and
// reports whether another frame should be requested.
//
// Termination is checked before anything else so a finished game stays
// frozen in the state that ended it. The first frame only establishes
// the time base. Once the accumulator exceeds the step, one update runs,
// the accumulator resets and the simulation's per-tick input state is
// cleared. The frame is then rendered unconditionally.
func (s *Scheduler) Frame(ts float64) bool {
	if s.state == StateHalted {
		return false
	}
	if s.sim.Over() {
		s.state = StateHalted
		return false
	}

	var delta float64
	if s.started {
		delta, s.fps = FrameTiming(s.last, ts)
	}
	s.started = true
	s.last = ts
	s.frames++
	s.fpsSink.SetText(strconv.Itoa(s.fps))

	s.acc += delta
	if s.acc > s.step {
		s.state = StateReady
		s.sim.Update()
		s.acc = 0
		s.sim.EndTick()
		s.ticks++
		s.state = StateAccumulating
	}

	s.renderer.Render()

	if s.sim.Over() {
		s.state = StateHalted
		return false
	}
	return true
}

// Drive feeds timestamps from frames into Frame until the simulation
// halts, the channel closes or the context is cancelled.
func (s *Scheduler) Drive(ctx context.Context, frames <-chan float64) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts, ok := <-frames:
			if !ok {
				return nil
			}
			if !s.Frame(ts) {
				return nil
			}
		}
	}
}

// State returns the current phase.
func (s *Scheduler) State() State {
	return s.state
}

// Halted reports whether the loop has stopped for good.
func (s *Scheduler) Halted() bool {
	return s.state == StateHalted
}

// FPS returns the most recently published frames per second.
func (s *Scheduler) FPS() int {
	return s.fps
}

// Accumulator returns the seconds accumulated toward the next update.
func (s *Scheduler) Accumulator() float64 {
	return s.acc
}

// Frames returns the number of frames processed.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Ticks returns the number of logical updates performed.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Step returns the update interval in seconds.
func (s *Scheduler) Step() float64 {
	return s.step
}
