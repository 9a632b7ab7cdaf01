// Package render paints a scene into a CPU surface. Stages are stateless
// painters grouped into layers and composed back to front every frame.
package render

import (
	"time"

	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/geometry"
)

// Layer orders stages; lower layers are painted first
type Layer uint8

const (
	LayerSky Layer = iota
	LayerDistant
	LayerStructure
	LayerAgents
	LayerForeground
	LayerParticles
)

func (l Layer) String() string {
	switch l {
	case LayerSky:
		return "sky"
	case LayerDistant:
		return "distant"
	case LayerStructure:
		return "structure"
	case LayerAgents:
		return "agents"
	case LayerForeground:
		return "foreground"
	case LayerParticles:
		return "particles"
	}
	return "unknown"
}

// Frame is everything a stage may read while drawing. Stages must not
// mutate anything but the surface.
type Frame struct {
	Surface   *Surface
	Now       time.Duration
	Geometry  *geometry.Geometry
	Decor     *Decor
	Agents    []*agent.Agent
	Particles *agent.ParticleSystem
}

// Stage draws one part of the scene
type Stage interface {
	Layer() Layer
	Draw(f *Frame)
}

// Compositor holds the stages of a scene in paint order
type Compositor struct {
	stages []Stage
}

// Add inserts a stage after every stage of the same or a lower layer
func (c *Compositor) Add(s Stage) {
	c.stages = append(c.stages, s)
	// Insertion sort by layer; stable for equal layers
	for i := len(c.stages) - 1; i > 0; i-- {
		if c.stages[i].Layer() < c.stages[i-1].Layer() {
			c.stages[i], c.stages[i-1] = c.stages[i-1], c.stages[i]
		} else {
			break
		}
	}
}

// Stages returns the stages in paint order
func (c *Compositor) Stages() []Stage {
	return c.stages
}

// Compose clears the surface and paints every stage back to front
func (c *Compositor) Compose(f *Frame) {
	if f == nil || f.Surface == nil {
		return
	}
	f.Surface.Clear()
	for _, s := range c.stages {
		s.Draw(f)
	}
}
