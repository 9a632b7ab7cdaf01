package render

import (
	"image/color"
	"math"
	"time"

	"github.com/1siamBot/pixelcity/engine/sprite"
	"golang.org/x/image/colornames"
)

// Sky gradients per scene skin
var (
	DaySky = []Stop{
		{0, sprite.MustHex("#60a5fa")},
		{0.4, sprite.MustHex("#38bdf8")},
		{1, sprite.MustHex("#0f172a")},
	}
	DuskSky = []Stop{
		{0, sprite.MustHex("#1e1b4b")},
		{0.55, sprite.MustHex("#7c3aed")},
		{1, sprite.MustHex("#f97316")},
	}
	NightSky = []Stop{
		{0, sprite.MustHex("#020617")},
		{0.6, sprite.MustHex("#1e293b")},
		{1, sprite.MustHex("#334155")},
	}
)

// backdropColors are the fixed colours of the distant layers
var backdropColors = map[string]color.RGBA{
	"cloud":   colornames.Whitesmoke,
	"skyline": sprite.MustHex("#1e293b"),
	"window":  colornames.Lightsteelblue,
	"star":    colornames.Lightyellow,
}

// SkyStage fills the whole surface with a vertical gradient
type SkyStage struct {
	Stops []Stop
}

func (s *SkyStage) Layer() Layer { return LayerSky }

func (s *SkyStage) Draw(f *Frame) {
	f.Surface.FillGradient(0, 0, float64(f.Surface.Width), float64(f.Surface.Height), s.Stops)
}

// CloudStage draws blocky clouds drifting right and wrapping around
type CloudStage struct {
	Count int
}

func (s *CloudStage) Layer() Layer { return LayerSky }

func (s *CloudStage) Draw(f *Frame) {
	w := float64(f.Surface.Width)
	h := float64(f.Surface.Height)
	sec := f.Now.Seconds()
	ms := float64(f.Now) / float64(time.Millisecond)
	clr := Alpha(backdropColors["cloud"], 0.9)
	for i := 0; i < s.Count; i++ {
		speed := 8 + 1.5*float64(i) // px/s
		x := math.Mod(sec*speed+float64(i)*w/float64(s.Count), w+80) - 40
		y := h*0.16 + math.Sin(ms*0.0004+float64(i))*8 + float64(i%3)*14
		f.Surface.FillRect(x, y, 40, 8, clr)
		f.Surface.FillRect(x+8, y-6, 24, 6, clr)
		f.Surface.FillRect(x+4, y+8, 30, 4, clr)
	}
}

// SkylineStage draws the distant city standing on the horizon
type SkylineStage struct{}

func (s *SkylineStage) Layer() Layer { return LayerDistant }

func (s *SkylineStage) Draw(f *Frame) {
	if f.Decor == nil || f.Geometry == nil {
		return
	}
	base := f.Geometry.Horizon
	win := Alpha(backdropColors["window"], 0.8)
	for _, t := range f.Decor.Skyline {
		top := base - t.H
		f.Surface.FillRect(t.X, top, t.W, t.H, backdropColors["skyline"])
		for r := range t.Lit {
			for c := range t.Lit[r] {
				if t.Lit[r][c] {
					f.Surface.FillRect(t.X+3+float64(c)*SkylineWinCellX, top+4+float64(r)*SkylineWinCellY, 3, 4, win)
				}
			}
		}
	}
}

// StarStage twinkles the decor stars
type StarStage struct{}

func (s *StarStage) Layer() Layer { return LayerSky }

func (s *StarStage) Draw(f *Frame) {
	if f.Decor == nil {
		return
	}
	ms := float64(f.Now) / float64(time.Millisecond)
	for i, p := range f.Decor.Stars {
		a := 0.5 + 0.5*math.Sin(ms*0.002+float64(i)*1.7)
		f.Surface.FillRect(p.X, p.Y, 1, 1, Alpha(backdropColors["star"], a))
	}
}
