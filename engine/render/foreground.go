package render

import (
	"image/color"

	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

var (
	PipeBody      = sprite.MustHex("#475569")
	PipeHighlight = sprite.MustHex("#94a3b8")
	CableShadow   = sprite.MustHex("#0f172a")
)

// PipeStage draws the near-camera pipe along the bottom edge and a sagging
// cable across the top.
type PipeStage struct {
	JointEvery float64
}

func (s *PipeStage) Layer() Layer { return LayerForeground }

func (s *PipeStage) Draw(f *Frame) {
	surf := f.Surface
	w := float64(surf.Width)
	h := float64(surf.Height)

	y := h*0.97 - 5
	surf.FillRect(0, y, w, 10, PipeBody)
	surf.FillRect(0, y+2, w, 1, PipeHighlight)
	if s.JointEvery > 0 {
		for x := s.JointEvery / 2; x < w; x += s.JointEvery {
			surf.FillRect(x-3, y-2, 6, 14, PipeBody)
			surf.FillRect(x-3, y-2, 6, 1, PipeHighlight)
		}
	}
	surf.StrokeQuad(0, h*0.04, w/2, h*0.12, w, h*0.06, 2, CableShadow)
}

// ParticleStage draws live particles, fading sparks and motes with age
type ParticleStage struct{}

func (s *ParticleStage) Layer() Layer { return LayerParticles }

func (s *ParticleStage) Draw(f *Frame) {
	if f.Particles == nil {
		return
	}
	for i := range f.Particles.Particles {
		p := &f.Particles.Particles[i]
		var clr color.Color = p.Color
		if p.Kind == agent.KindSpark || p.Kind == agent.KindMote {
			clr = Alpha(p.Color, p.Fade())
		}
		f.Surface.FillRect(p.X, p.Y, p.Size, p.Size, clr)
	}
}
