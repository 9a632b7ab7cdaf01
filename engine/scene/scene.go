// Package scene ties geometry, population, behaviour and rendering into one
// world context driven by the frame scheduler.
package scene

import (
	"fmt"
	"log"
	"time"

	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/1siamBot/pixelcity/engine/render"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// Scene owns everything one animated surface needs. All state is replaced
// on resize; nothing outlives the scene.
type Scene struct {
	Variant  Variant
	Viewport core.Viewport

	Surface    *render.Surface
	Geometry   *geometry.Geometry
	Decor      *render.Decor
	Agents     []*agent.Agent
	Particles  *agent.ParticleSystem
	Events     *core.EventBus
	Compositor *render.Compositor

	skin     skin
	rng      core.Rand
	disabled bool
	now      time.Duration
	stats    Stats
}

var _ core.Target = (*Scene)(nil)

// Stats is a snapshot of scene counters
type Stats struct {
	Agents    int
	Working   int
	Particles int

	JobsStarted  uint64
	JobsFinished uint64
	Bursts       uint64
	Resizes      uint64
	Frames       uint64
}

func (st Stats) String() string {
	return fmt.Sprintf("agents %d (working %d)  particles %d  jobs %d/%d  frames %d",
		st.Agents, st.Working, st.Particles, st.JobsFinished, st.JobsStarted, st.Frames)
}

// New creates a scene of variant v for viewport vp. A viewport with no
// drawable area means there is nothing to mount on: the scene is returned
// disabled and every method is a no-op. A nil rng is seeded from the clock.
func New(vp core.Viewport, v Variant, rng core.Rand) *Scene {
	s := &Scene{Variant: v}
	if !vp.Valid() {
		log.Printf("Scene: no drawable area (%dx%d), disabled", vp.Width, vp.Height)
		s.disabled = true
		return s
	}
	if rng == nil {
		rng = core.NewRand(time.Now().UnixNano())
	}
	s.rng = rng
	s.skin = v.skin()
	s.Particles = agent.NewParticleSystem()
	s.Events = core.NewEventBus()
	s.Compositor = &render.Compositor{}
	for _, st := range s.skin.stages {
		s.Compositor.Add(st)
	}

	s.Events.On(core.EvtWorkStarted, func(core.Event) { s.stats.JobsStarted++ })
	s.Events.On(core.EvtWorkFinished, func(core.Event) { s.stats.JobsFinished++ })
	s.Events.On(core.EvtParticleBurst, func(core.Event) { s.stats.Bursts++ })
	s.Events.On(core.EvtSceneResized, func(core.Event) { s.stats.Resizes++ })

	s.Resize(vp)
	return s
}

// Enabled reports whether the scene draws anything
func (s *Scene) Enabled() bool {
	return !s.disabled
}

// Resize rebuilds the scene for vp: surface, geometry, decor, population,
// then drops every particle. Viewports with no area are ignored so a
// minimised host keeps its last scene.
func (s *Scene) Resize(vp core.Viewport) {
	if s.disabled {
		return
	}
	if !vp.Valid() {
		return
	}
	s.Viewport = vp
	s.Surface = render.NewSurface(vp)
	s.Geometry = geometry.Compute(float64(vp.Width), float64(vp.Height), s.skin.layout)
	s.Decor = render.NewDecor(s.Geometry, s.rng)
	s.Agents = s.skin.policy.Populate(s.Geometry, s.rng)
	s.Particles.Reset()
	s.Events.Emit(core.Event{Type: core.EvtSceneResized, Frame: s.stats.Frames, Payload: vp})

	log.Printf("Scene: %s %dx%d @%.2gx, %d agents", s.Variant, vp.Width, vp.Height, vp.DeviceScale(), len(s.Agents))
}

// Frame advances the world by dt and paints it. Agents update before the
// particles they emit; the compositor runs last so every stage sees the
// state of this frame.
func (s *Scene) Frame(now, dt time.Duration) {
	if s.disabled {
		return
	}
	s.now = now
	s.stats.Frames++
	emit := burstEmitter{s}

	for _, a := range s.Agents {
		switch a.Update(dt, s.rng, emit) {
		case agent.StartedWork:
			s.Events.Emit(core.Event{Type: core.EvtWorkStarted, Frame: s.stats.Frames, Payload: a})
		case agent.FinishedWork:
			s.Events.Emit(core.Event{Type: core.EvtWorkFinished, Frame: s.stats.Frames, Payload: a})
		}
	}

	s.Particles.Update(dt)
	if s.skin.ambient {
		s.emitAmbient()
	}
	s.Events.Dispatch()

	s.Compositor.Compose(&render.Frame{
		Surface:   s.Surface,
		Now:       now,
		Geometry:  s.Geometry,
		Decor:     s.Decor,
		Agents:    s.Agents,
		Particles: s.Particles,
	})
}

// emitAmbient releases data motes drifting up the tower face
func (s *Scene) emitAmbient() {
	if !core.Chance(s.rng, AmbientChance) {
		return
	}
	t := s.Geometry.Tower
	s.Particles.EmitMote(t.X+s.rng.Float64()*t.W, t.Y+s.rng.Float64()*t.H, s.rng)
}

// Now returns the timestamp of the last frame
func (s *Scene) Now() time.Duration {
	return s.now
}

// Stats returns the current counters
func (s *Scene) Stats() Stats {
	st := s.stats
	if s.disabled {
		return st
	}
	st.Agents = len(s.Agents)
	st.Particles = s.Particles.Len()
	for _, a := range s.Agents {
		if a.State == agent.Working {
			st.Working++
		}
	}
	return st
}

// burstEmitter forwards work particles to the scene and reports each burst
type burstEmitter struct {
	s *Scene
}

func (e burstEmitter) EmitWork(role sprite.Role, x, y float64, facingRight bool, rng core.Rand) {
	e.s.Particles.EmitWork(role, x, y, facingRight, rng)
	e.s.Events.Emit(core.Event{Type: core.EvtParticleBurst, Frame: e.s.stats.Frames, Payload: role})
}
