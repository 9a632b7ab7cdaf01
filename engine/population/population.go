// Package population generates the robots of a scene for the current
// geometry, either scattered at random or from a fixed manifest.
package population

import (
	"math"

	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// Policy produces a fresh agent set for a geometry. It is re-run on every
// resize because agent positions are absolute.
type Policy interface {
	Populate(g *geometry.Geometry, rng core.Rand) []*agent.Agent
}

// Scatter places a count of agents derived from the viewport area at random
// positions on random lanes.
type Scatter struct {
	Min, Max     int
	AreaPerAgent float64

	Archetypes []sprite.Archetype
	Roles      []sprite.Role
	ScaleMin   float64
	ScaleMax   float64

	Boundary agent.Boundary
}

// Count returns the number of agents for a viewport, clamped to [Min, Max]
func (s *Scatter) Count(width, height float64) int {
	n := s.Min
	if s.AreaPerAgent > 0 {
		n = int(math.Floor(width * height / s.AreaPerAgent))
	}
	if n < s.Min {
		n = s.Min
	}
	if s.Max > 0 && n > s.Max {
		n = s.Max
	}
	return n
}

func (s *Scatter) Populate(g *geometry.Geometry, rng core.Rand) []*agent.Agent {
	n := s.Count(g.Width, g.Height)
	agents := make([]*agent.Agent, 0, n)
	for i := 0; i < n; i++ {
		arch := pickArchetype(s.Archetypes, rng)
		role := pickRole(s.Roles, rng)
		arch, role = pair(arch, role)

		a := spawn(arch, role, core.Between(rng, s.ScaleMin, s.ScaleMax), rng)
		a.Boundary = s.Boundary

		lane, ok := g.Lane(rng.Intn(max(1, len(g.Lanes))))
		if !ok {
			lane = geometry.Lane{MaxX: g.Width, Y: g.Height}
		}
		// One sample, then clamp. Never resample: lanes narrower than the
		// agent would otherwise loop forever.
		x := lane.MinX + rng.Float64()*(lane.Width()-a.W)
		a.Place(lane, x)
		agents = append(agents, a)
	}
	return agents
}

// Entry is one fixed slot of a manifest. Offset is the fraction of the
// building width from its left wall.
type Entry struct {
	Archetype sprite.Archetype
	Role      sprite.Role
	Floor     int
	Offset    float64
}

// Manifest places one agent per entry. Composition and positions are fixed;
// scale jitter, phase, speed and accent colours are random. Positions are
// clamped against the widest sprite ScaleMax allows, so the sampled scale
// never moves an agent.
type Manifest struct {
	Entries  []Entry
	ScaleMin float64
	ScaleMax float64
	Boundary agent.Boundary
}

func (m *Manifest) Populate(g *geometry.Geometry, rng core.Rand) []*agent.Agent {
	agents := make([]*agent.Agent, 0, len(m.Entries))
	for _, e := range m.Entries {
		a := spawn(e.Archetype, e.Role, core.Between(rng, m.ScaleMin, m.ScaleMax), rng)
		a.Boundary = m.Boundary

		lane, ok := g.Lane(e.Floor)
		if !ok {
			lane = geometry.Lane{MaxX: g.Width, Y: g.Height}
		}
		a.Place(lane, m.Slot(g, lane, e))
		agents = append(agents, a)
	}
	return agents
}

// Slot returns the x of entry e on lane. The offset is measured against the
// tower when the geometry has one and against the lane otherwise.
func (m *Manifest) Slot(g *geometry.Geometry, lane geometry.Lane, e Entry) float64 {
	x := lane.MinX + e.Offset*lane.Width()
	if g.Tower.W > 0 {
		x = g.Tower.X + e.Offset*g.Tower.W
	}
	cols, _ := sprite.Size(e.Archetype)
	return lane.ClampX(x, float64(cols)*math.Max(m.ScaleMin, m.ScaleMax))
}

// spawn creates an agent with random phase, speed and palette
func spawn(arch sprite.Archetype, role sprite.Role, scale float64, rng core.Rand) *agent.Agent {
	a := agent.New(arch, role, scale, rng.Float64()*2*math.Pi, sprite.NewPalette(role, rng))
	a.Speed = core.Between(rng, agent.MinSpeed, agent.MaxSpeed)
	if core.Chance(rng, 0.5) {
		a.Speed = -a.Speed
	}
	return a
}

// pair keeps drones and workers consistent with their archetype
func pair(arch sprite.Archetype, role sprite.Role) (sprite.Archetype, sprite.Role) {
	switch {
	case role == sprite.RoleDrone:
		return sprite.ArchDrone, role
	case arch == sprite.ArchDrone:
		return arch, sprite.RoleDrone
	case arch == sprite.ArchWorker:
		return arch, sprite.RoleWorker
	case role == sprite.RoleWorker:
		return sprite.ArchWorker, role
	}
	return arch, role
}

func pickArchetype(list []sprite.Archetype, rng core.Rand) sprite.Archetype {
	if len(list) == 0 {
		return sprite.ArchWalker
	}
	return list[rng.Intn(len(list))]
}

func pickRole(list []sprite.Role, rng core.Rand) sprite.Role {
	if len(list) == 0 {
		return sprite.DefaultRole
	}
	return list[rng.Intn(len(list))]
}
