package agent

import (
	"image/color"
	"time"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// ParticleKind selects the look and physics of a particle
type ParticleKind uint8

const (
	KindSpark ParticleKind = iota
	KindDrip
	KindDust
	KindMote
)

// MaxParticles caps the live set; particles added beyond it are dropped
const MaxParticles = 512

var gravity = map[ParticleKind]float64{
	KindSpark: 240,
	KindDrip:  420,
	KindDust:  -20,
	KindMote:  0,
}

var particleColors = map[ParticleKind]color.RGBA{
	KindSpark: {255, 200, 50, 255},
	KindDrip:  sprite.WaterColor,
	KindDust:  {203, 213, 225, 255},
	KindMote:  {134, 239, 172, 255},
}

// Particle is a short-lived point effect. Age and Life are in seconds.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
	Size   float64
	Kind   ParticleKind
	Color  color.RGBA
}

// Fade returns the remaining life fraction in [0, 1]
func (p *Particle) Fade() float64 {
	if p.Life <= 0 {
		return 0
	}
	f := 1 - p.Age/p.Life
	if f < 0 {
		return 0
	}
	return f
}

// ParticleSystem manages particles
type ParticleSystem struct {
	Particles []Particle
	Max       int
}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{Max: MaxParticles}
}

// Add appends a particle. A full system drops it so live particles always
// run out their life.
func (ps *ParticleSystem) Add(p Particle) {
	if ps.Max > 0 && len(ps.Particles) >= ps.Max {
		return
	}
	if p.Color == (color.RGBA{}) {
		p.Color = particleColors[p.Kind]
	}
	if p.Size == 0 {
		p.Size = 2
	}
	ps.Particles = append(ps.Particles, p)
}

// EmitWork spawns the particle matching a role's job at (x, y)
func (ps *ParticleSystem) EmitWork(role sprite.Role, x, y float64, facingRight bool, rng core.Rand) {
	dir := 1.0
	if !facingRight {
		dir = -1
	}
	switch role {
	case sprite.RolePlumber:
		ps.Add(Particle{X: x, Y: y, VX: dir * 10, VY: 0, Life: 0.5, Kind: KindDrip, Size: 2})
	case sprite.RoleCleaner:
		ps.Add(Particle{
			X: x, Y: y + 6,
			VX:   dir * core.Between(rng, 10, 40),
			VY:   -core.Between(rng, 5, 20),
			Life: 0.6, Kind: KindDust, Size: 3,
		})
	case sprite.RoleCoder:
		ps.EmitMote(x, y, rng)
	default:
		ps.EmitSpark(x, y, rng)
	}
}

// EmitSpark spawns a welding spark flying up and out
func (ps *ParticleSystem) EmitSpark(x, y float64, rng core.Rand) {
	ps.Add(Particle{
		X: x, Y: y,
		VX:   core.Between(rng, -60, 60),
		VY:   -core.Between(rng, 60, 120),
		Life: 10.0 / 60.0,
		Kind: KindSpark,
	})
}

// EmitMote spawns a slow rising data mote
func (ps *ParticleSystem) EmitMote(x, y float64, rng core.Rand) {
	ps.Add(Particle{
		X: x, Y: y,
		VX:   core.Between(rng, -4, 4),
		VY:   -core.Between(rng, 8, 20),
		Life: core.Between(rng, 1.5, 3),
		Kind: KindMote,
	})
}

// Update ages particles by dt and drops those that reached their life
func (ps *ParticleSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	alive := ps.Particles[:0]
	for i := range ps.Particles {
		p := ps.Particles[i]
		p.Age += sec
		if p.Age >= p.Life {
			continue
		}
		p.X += p.VX * sec
		p.Y += p.VY * sec
		p.VY += gravity[p.Kind] * sec
		alive = append(alive, p)
	}
	ps.Particles = alive
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.Particles)
}

// Reset drops every particle
func (ps *ParticleSystem) Reset() {
	ps.Particles = ps.Particles[:0]
}
