// Package agent implements the robot behaviour: the walking/working state
// machine, per-archetype motion, bobbing and the particles robots emit.
package agent

import (
	"math"
	"time"

	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// State is the behavioural state of an agent
type State uint8

const (
	Walking State = iota
	Working
)

func (s State) String() string {
	switch s {
	case Walking:
		return "walking"
	case Working:
		return "working"
	}
	return "undefined"
}

// Boundary decides what happens when an agent reaches a lane end
type Boundary uint8

const (
	BoundaryReflect Boundary = iota
	BoundaryWrap
)

// Motion is the movement-kind specific part of an agent. Exactly one of
// *Walk, *Roll or *Hover.
type Motion interface {
	amplitude() float64
	lift() float64
}

// Walk is legged locomotion; the stride frame flips every StrideTicks
type Walk struct {
	StrideTicks uint64
}

// Roll is wheeled locomotion; Turn accumulates wheel revolutions
type Roll struct {
	Turn float64
}

// Hover floats Lift pixels above the lane with a wider bob. Rotors flip
// every RotorTicks when non-zero.
type Hover struct {
	Lift       float64
	Amplitude  float64
	RotorTicks uint64
}

func (*Walk) amplitude() float64 { return 1 }
func (*Walk) lift() float64 { return 0 }
func (*Roll) amplitude() float64 { return 0.5 }
func (*Roll) lift() float64 { return 0 }
func (h *Hover) amplitude() float64 { return h.Amplitude }
func (h *Hover) lift() float64 { return h.Lift }

// MotionFor returns a fresh motion for an archetype
func MotionFor(a sprite.Archetype) Motion {
	switch a {
	case sprite.ArchWheeled:
		return &Roll{}
	case sprite.ArchHover:
		return &Hover{Lift: 6, Amplitude: 3}
	case sprite.ArchDrone:
		return &Hover{Lift: 18, Amplitude: 4, RotorTicks: 3}
	default:
		return &Walk{StrideTicks: 10}
	}
}

// Agent is one robot. Position is the top-left of its sprite box in logical
// pixels; the bob is applied only when drawing.
type Agent struct {
	X, Y float64
	W, H float64

	Archetype sprite.Archetype
	Role      sprite.Role
	Scale     float64
	Phase     float64
	Palette   sprite.Palette

	Lane     geometry.Lane
	Boundary Boundary
	Speed    float64 // logical px per second, sign is direction

	State     State
	Countdown int
	Ticks     uint64
	Frame     int
	Motion    Motion
}

// New creates an agent with its size derived from the archetype sprite
func New(arch sprite.Archetype, role sprite.Role, scale, phase float64, palette sprite.Palette) *Agent {
	cols, rows := sprite.Size(arch)
	return &Agent{
		Archetype: arch,
		Role:      role,
		Scale:     scale,
		Phase:     phase,
		Palette:   palette,
		W:         float64(cols) * scale,
		H:         float64(rows) * scale,
		Motion:    MotionFor(arch),
	}
}

// Place puts the agent on lane at x, clamped so its body stays in the lane
func (a *Agent) Place(lane geometry.Lane, x float64) {
	a.Lane = lane
	a.X = lane.ClampX(x, a.W)
	a.Y = lane.Y - a.H - a.lift()
	if a.Y < 0 {
		a.Y = 0
	}
}

// Baseline is the lane line the agent stands on or hovers over
func (a *Agent) Baseline() float64 {
	return a.Y + a.H + a.lift()
}

func (a *Agent) lift() float64 {
	if a.Motion == nil {
		return 0
	}
	return a.Motion.lift()
}

// Bob returns the vertical idle offset at time now
func (a *Agent) Bob(now time.Duration) float64 {
	amp := 1.0
	if a.Motion != nil {
		amp = a.Motion.amplitude()
	}
	ms := float64(now) / float64(time.Millisecond)
	return math.Sin(ms*0.003+a.Phase) * amp
}

// Bounds is the on-screen sprite box at time now
func (a *Agent) Bounds(now time.Duration) geometry.Rect {
	return geometry.Rect{X: a.X, Y: a.Y + a.Bob(now), W: a.W, H: a.H}
}

// FacingRight reports the movement direction; stationary agents face right
func (a *Agent) FacingRight() bool {
	return a.Speed >= 0
}

// Mirrored reports whether the sprite is drawn flipped
func (a *Agent) Mirrored() bool {
	return a.Archetype.Mirrors() && !a.FacingRight()
}

// Pose picks the sprite frame for the current state
func (a *Agent) Pose() sprite.Pose {
	if a.State == Working {
		return sprite.PoseWork
	}
	if a.Speed == 0 {
		return sprite.PoseIdle
	}
	if a.Frame == 0 {
		return sprite.PoseStrideA
	}
	return sprite.PoseStrideB
}

// Sprite returns the bitmap for the current pose
func (a *Agent) Sprite() *sprite.Definition {
	return sprite.Lookup(a.Archetype, a.Pose())
}
