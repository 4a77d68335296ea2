// Package scheduler drives a simulation at a fixed logic rate from
// host frame callbacks that arrive at whatever rate the host likes.
package scheduler

import (
	"context"
	"time"
)

// Simulation is advanced one tick at a time
type Simulation interface {
	Update()
	Over() bool
}

// Scheduler is a fixed-timestep accumulator. OnFrame is the only entry point
// and must not be called concurrently.
type Scheduler struct {
	tick time.Duration
	sim  Simulation
	draw func()

	last    time.Duration
	started bool
	acc     time.Duration
	running bool
	frames  int
	updates int
}

// New creates a scheduler that updates sim every tick and calls draw every frame
func New(tick time.Duration, sim Simulation, draw func()) *Scheduler {
	if draw == nil {
		draw = func() {}
	}
	return &Scheduler{
		tick:    tick,
		sim:     sim,
		draw:    draw,
		running: true,
	}
}

// OnFrame handles one host frame. elapsed is the host's monotonic clock.
// Returns whether the host should request another frame.
//
// The frame is drawn even when the session is over, but no update runs then.
// At most one update runs per frame; time beyond one tick is discarded.
func (s *Scheduler) OnFrame(elapsed time.Duration) bool {
	var delta time.Duration
	if s.started && elapsed > s.last {
		delta = elapsed - s.last
	}
	s.last = elapsed
	s.started = true
	s.frames++

	s.running = !s.sim.Over()
	s.draw()

	s.acc += delta
	if s.running && s.acc >= s.tick {
		s.sim.Update()
		s.updates++
		s.acc = 0
	}
	return s.running
}

// Running reports whether the last frame asked to be re-armed
func (s *Scheduler) Running() bool {
	return s.running
}

// Restart re-arms the scheduler for a fresh session. The clock base is kept.
func (s *Scheduler) Restart() {
	s.acc = 0
	s.running = true
}

// Stats returns the number of frames handled and updates run
func (s *Scheduler) Stats() (frames, updates int) {
	return s.frames, s.updates
}

// Run feeds host ticks into OnFrame until the scheduler stops re-arming or ctx ends.
// Tick times are measured from the first tick received, continuing the clock of
// any earlier run so a restarted session sees no jump.
func (s *Scheduler) Run(ctx context.Context, frames <-chan time.Time) error {
	var start time.Time
	base := s.last
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t, ok := <-frames:
			if !ok {
				return nil
			}
			if start.IsZero() {
				start = t
			}
			if !s.OnFrame(base + t.Sub(start)) {
				return nil
			}
		}
	}
}
