package agent

import (
	"testing"
	"time"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/1siamBot/pixelcity/engine/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

type emission struct {
	tick        uint64
	x, y        float64
	facingRight bool
}

type recordingEmitter struct {
	agent *Agent
	got   []emission
}

func (r *recordingEmitter) EmitWork(_ sprite.Role, x, y float64, facingRight bool, _ core.Rand) {
	r.got = append(r.got, emission{tick: r.agent.Ticks, x: x, y: y, facingRight: facingRight})
}

func newWalker(t *testing.T, speed float64) *Agent {
	t.Helper()
	a := New(sprite.ArchWalker, sprite.RoleWorker, 3, 0, sprite.NewPalette(sprite.RoleWorker, nil))
	a.Place(geometry.Lane{MinX: 0, MaxX: 1000, Y: 500}, 400)
	a.Speed = speed
	return a
}

func TestNewDerivesSizeFromSprite(t *testing.T) {
	a := New(sprite.ArchDrone, sprite.RoleDrone, 2.5, 0, sprite.Palette{})
	assert.Equal(t, 25.0, a.W)
	assert.Equal(t, 15.0, a.H)
	assert.IsType(t, &Hover{}, a.Motion)
}

func TestPlaceStandsOnLane(t *testing.T) {
	lane := geometry.Lane{MinX: 100, MaxX: 300, Y: 400}
	for arch := sprite.Archetype(0); arch < sprite.NumArchetypes; arch++ {
		a := New(arch, sprite.RoleCoder, 3, 0, sprite.Palette{})
		a.Place(lane, 1000)
		assert.InDelta(t, 400, a.Baseline(), 1e-9, arch.String())
		assert.InDelta(t, 300-a.W, a.X, 1e-9, arch.String())
	}
}

func TestWorkCycle(t *testing.T) {
	// 0.001 starts work, 0.205 makes Intn(100) = 20 so the countdown is 80
	rng := core.NewSequenceRand(0.001, 0.205, 0.9, 0.9, 0.9)
	a := newWalker(t, 30)
	em := &recordingEmitter{agent: a}

	require.Equal(t, StartedWork, a.Update(frame, rng, em))
	start := a.Ticks
	x := a.X
	assert.Equal(t, Working, a.State)
	assert.Equal(t, 80, a.Countdown)

	for i := 1; i < 80; i++ {
		assert.Equal(t, TransitionNone, a.Update(frame, rng, em))
		assert.Equal(t, Working, a.State, "tick %d", i)
		assert.Equal(t, x, a.X, "working agents stand still")
	}
	assert.Equal(t, FinishedWork, a.Update(frame, rng, em))
	assert.Equal(t, Walking, a.State)
	assert.Equal(t, start+80, a.Ticks)
	assert.Equal(t, x, a.X)

	require.Len(t, em.got, 16)
	for i, e := range em.got {
		assert.Equal(t, start+uint64(5*(i+1)), e.tick)
	}
}

func TestEmitPointFollowsFacing(t *testing.T) {
	rng := core.NewSequenceRand(0.001, 0.0, 0.9)
	right := newWalker(t, 30)
	left := newWalker(t, -30)
	emR := &recordingEmitter{agent: right}
	emL := &recordingEmitter{agent: left}

	right.Update(frame, rng, emR)
	left.Update(frame, core.NewSequenceRand(0.001, 0.0, 0.9), emL)
	for i := 0; i < WorkMin; i++ {
		right.Update(frame, rng, emR)
		left.Update(frame, rng, emL)
	}
	require.NotEmpty(t, emR.got)
	require.NotEmpty(t, emL.got)
	assert.Equal(t, right.X+right.W, emR.got[0].x)
	assert.True(t, emR.got[0].facingRight)
	assert.Equal(t, left.X, emL.got[0].x)
	assert.False(t, emL.got[0].facingRight)
}

func TestTurnAroundAfterWork(t *testing.T) {
	// start, countdown 60, then every roll is 0.1: the turn roll succeeds
	rng := core.NewSequenceRand(0.001, 0.0, 0.1)
	a := newWalker(t, 30)
	a.Update(frame, rng, nil)
	for a.State == Working {
		a.Update(frame, rng, nil)
	}
	assert.Equal(t, -30.0, a.Speed)
}

func TestWalkingAdvancesBySpeedTimesElapsed(t *testing.T) {
	rng := core.NewSequenceRand(0.9)
	a := newWalker(t, 40)
	x := a.X
	a.Update(50*time.Millisecond, rng, nil)
	assert.InDelta(t, x+2, a.X, 1e-9)
}

func TestTransitionsAreTotal(t *testing.T) {
	rng := core.NewRand(11)
	ps := NewParticleSystem()
	a := newWalker(t, 25)
	for i := 0; i < 20000; i++ {
		before := a.State
		tr := a.Update(frame, rng, ps)
		switch before {
		case Walking:
			assert.Contains(t, []State{Walking, Working}, a.State)
			assert.NotEqual(t, FinishedWork, tr)
		case Working:
			assert.Contains(t, []State{Walking, Working}, a.State)
			assert.NotEqual(t, StartedWork, tr)
		default:
			t.Fatalf("undefined state %v", before)
		}
		ps.Update(frame)
	}
}

func TestUndefinedStateRecovers(t *testing.T) {
	a := newWalker(t, 10)
	a.State = State(9)
	a.Update(frame, core.NewSequenceRand(0.9), nil)
	assert.Equal(t, Walking, a.State)
	assert.Equal(t, "undefined", State(9).String())
}

func TestAgentsStayInLane(t *testing.T) {
	tests := []struct {
		name     string
		boundary Boundary
		lane     geometry.Lane
	}{
		{"Reflect", BoundaryReflect, geometry.Lane{MinX: 100, MaxX: 300, Y: 500}},
		{"Wrap", BoundaryWrap, geometry.Lane{MinX: 0, MaxX: 640, Y: 300}},
		{"Reflect narrow lane", BoundaryReflect, geometry.Lane{MinX: 50, MaxX: 60, Y: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := core.NewRand(3)
			for arch := sprite.Archetype(0); arch < sprite.NumArchetypes; arch++ {
				a := New(arch, sprite.RoleCleaner, 3.5, 1, sprite.Palette{})
				a.Place(tt.lane, tt.lane.MinX)
				a.Boundary = tt.boundary
				a.Speed = -MaxSpeed
				for i := 0; i < 5000; i++ {
					a.Update(40*time.Millisecond, rng, nil)
					require.GreaterOrEqual(t, a.X, tt.lane.MinX)
					require.LessOrEqual(t, a.X, tt.lane.ClampX(tt.lane.MaxX, a.W))
				}
			}
		})
	}
}

func TestBobIsDeterministicAndPhased(t *testing.T) {
	a := newWalker(t, 10)
	b := newWalker(t, 10)
	b.Phase = 1.5

	now := 1234 * time.Millisecond
	assert.Equal(t, a.Bob(now), a.Bob(now))
	assert.NotEqual(t, a.Bob(now), b.Bob(now))
	assert.LessOrEqual(t, a.Bob(now), 1.0)

	drone := New(sprite.ArchDrone, sprite.RoleDrone, 2, 0, sprite.Palette{})
	ms := float64(time.Millisecond)
	assert.InDelta(t, 4, drone.Bob(time.Duration(ms*(1000*3.14159265/6))), 1e-3)

	box := a.Bounds(now)
	assert.Equal(t, a.Y+a.Bob(now), box.Y)
	assert.Equal(t, a.W, box.W)
}

func TestMirroring(t *testing.T) {
	a := newWalker(t, -10)
	assert.True(t, a.Mirrored())
	a.Speed = 10
	assert.False(t, a.Mirrored())

	d := New(sprite.ArchDrone, sprite.RoleDrone, 2, 0, sprite.Palette{})
	d.Speed = -10
	assert.False(t, d.Mirrored(), "drones never mirror")
}

func TestPoseFollowsState(t *testing.T) {
	a := newWalker(t, 10)
	assert.Equal(t, sprite.PoseStrideA, a.Pose())
	a.Frame = 1
	assert.Equal(t, sprite.PoseStrideB, a.Pose())
	a.State = Working
	assert.Equal(t, sprite.PoseWork, a.Pose())
	a.State = Walking
	a.Speed = 0
	assert.Equal(t, sprite.PoseIdle, a.Pose())
}
