package agent

import (
	"time"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// State machine tuning, in ticks unless noted
const (
	WorkChance  = 0.005 // per walking tick
	WorkMin     = 60
	WorkMax     = 160 // exclusive
	EmitEvery   = 5
	TurnChance  = 0.5 // on leaving work
	MinSpeed    = 12.0
	MaxSpeed    = 42.0 // px per second
	rollPerTurn = 2.0  // wheel diameters per stride frame
)

// Transition reports what changed during an update tick
type Transition uint8

const (
	TransitionNone Transition = iota
	StartedWork
	FinishedWork
)

// Emitter receives the particles a working agent throws off
type Emitter interface {
	EmitWork(role sprite.Role, x, y float64, facingRight bool, rng core.Rand)
}

// Update advances the agent by one tick of dt. Walking agents may start
// working; working agents count down, emit particles every EmitEvery ticks
// and stand still, then walk again possibly the other way.
func (a *Agent) Update(dt time.Duration, rng core.Rand, emit Emitter) Transition {
	a.Ticks++

	switch a.State {
	case Walking:
		if core.Chance(rng, WorkChance) {
			a.State = Working
			a.Countdown = WorkMin + rng.Intn(WorkMax-WorkMin)
			return StartedWork
		}
		a.advance(dt.Seconds())
		return TransitionNone

	case Working:
		a.Countdown--
		if a.Countdown%EmitEvery == 0 && emit != nil {
			x, y := a.emitPoint()
			emit.EmitWork(a.Role, x, y, a.FacingRight(), rng)
		}
		if a.Countdown <= 0 {
			a.Countdown = 0
			a.State = Walking
			if core.Chance(rng, TurnChance) {
				a.Speed = -a.Speed
			}
			return FinishedWork
		}
		return TransitionNone
	}

	// Unknown state: recover into walking
	a.State = Walking
	a.Countdown = 0
	return TransitionNone
}

// advance moves a walking agent and animates its motion kind
func (a *Agent) advance(sec float64) {
	dx := a.Speed * sec

	switch m := a.Motion.(type) {
	case *Walk:
		if m.StrideTicks > 0 && a.Ticks%m.StrideTicks == 0 {
			a.Frame ^= 1
		}
	case *Roll:
		if a.Scale > 0 {
			m.Turn += abs(dx) / (a.Scale * 2)
		}
		a.Frame = int(m.Turn/rollPerTurn) % 2
	case *Hover:
		if m.RotorTicks > 0 && a.Ticks%m.RotorTicks == 0 {
			a.Frame ^= 1
		}
	}

	a.X += dx
	a.bound()
}

// bound applies the boundary policy against the agent's lane
func (a *Agent) bound() {
	lo := a.Lane.MinX
	hi := a.Lane.ClampX(a.Lane.MaxX, a.W)

	switch a.Boundary {
	case BoundaryWrap:
		if a.X > hi {
			a.X = lo
		} else if a.X < lo {
			a.X = hi
		}
	default:
		if a.X < lo {
			a.X = lo
			a.Speed = abs(a.Speed)
		} else if a.X > hi {
			a.X = hi
			a.Speed = -abs(a.Speed)
		}
	}
}

// emitPoint is where work particles leave the agent: the tool side
func (a *Agent) emitPoint() (float64, float64) {
	y := a.Y + a.H*0.4
	if a.FacingRight() {
		return a.X + a.W, y
	}
	return a.X, y
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
