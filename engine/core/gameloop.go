package core

import (
	"context"
	"time"
)

// MaxFrameDelta caps the elapsed time handed to a frame. Longer gaps (a
// backgrounded window, a debugger pause) would otherwise teleport agents.
const MaxFrameDelta = 50 * time.Millisecond

// LoopState represents the scheduler lifecycle
type LoopState uint8

const (
	StateIdle LoopState = iota
	StateRunning
	StateStopped
)

// Viewport is the logical size of the drawing target plus the device pixel
// ratio used to back it.
type Viewport struct {
	Width  int
	Height int
	Scale  float64
}

// Valid reports whether the viewport can back a surface
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// DeviceScale returns the scale factor, defaulting to 1
func (v Viewport) DeviceScale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// Target receives resizes and frames from the scheduler
type Target interface {
	Resize(vp Viewport)
	Frame(now, dt time.Duration)
}

// Scheduler turns host paint callbacks into clamped frame deltas.
// It never sleeps: the host decides when the next callback arrives.
type Scheduler struct {
	MaxDelta time.Duration
	State    LoopState
	Frames   uint64
	last     time.Duration
	primed   bool
}

// NewScheduler creates a scheduler capping deltas at maxDelta
func NewScheduler(maxDelta time.Duration) *Scheduler {
	if maxDelta <= 0 {
		maxDelta = MaxFrameDelta
	}
	return &Scheduler{MaxDelta: maxDelta}
}

// Step should be called once per paint with the host's monotonic timestamp.
// Returns the elapsed time since the previous call, clamped to MaxDelta.
// The first call returns 0.
func (s *Scheduler) Step(now time.Duration) time.Duration {
	s.State = StateRunning
	s.Frames++
	if !s.primed {
		s.primed = true
		s.last = now
		return 0
	}
	dt := now - s.last
	s.last = now

	// Clock went backwards, treat as no time passing
	if dt < 0 {
		dt = 0
	}
	if dt > s.MaxDelta {
		dt = s.MaxDelta
	}
	return dt
}

// Run drives target from a stream of timestamps until ctx is cancelled or
// clock is closed. Resizes are applied between frames and never stop the loop.
func (s *Scheduler) Run(ctx context.Context, clock <-chan time.Duration, resize <-chan Viewport, target Target) error {
	defer func() { s.State = StateStopped }()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case vp := <-resize:
			target.Resize(vp)
		case now, ok := <-clock:
			if !ok {
				return nil
			}
			dt := s.Step(now)
			target.Frame(now, dt)
		}
	}
}
