package render

import (
	"image/color"
	"math"
	"time"

	"github.com/1siamBot/pixelcity/engine/sprite"
	"golang.org/x/image/colornames"
)

// Structure colours
var (
	SidewalkColor  = sprite.MustHex("#111827")
	CanalTop       = sprite.MustHex("#22d3ee")
	CanalDeep      = sprite.MustHex("#0f766e")
	GlintColor     = sprite.MustHex("#22d3ee")
	TuftColor      = sprite.MustHex("#16a34a")
	DeckColor      = sprite.MustHex("#92400e")
	DeckFloorColor = sprite.MustHex("#78350f")
	CableColor     = sprite.MustHex("#451a03")
	BridgeLight    = color.RGBA{252, 211, 77, 255}
	BlockColor     = sprite.MustHex("#e5e7eb")
	WindowDark     = sprite.MustHex("#111827")
	WindowLit      = sprite.MustHex("#facc15")
	AntennaColor   = sprite.MustHex("#94a3b8")
	TowerWall      = sprite.MustHex("#334155")
	TowerWindowLit = sprite.MustHex("#fde68a")
	TowerWindowOff = sprite.MustHex("#1e293b")
	SlabColor      = sprite.MustHex("#94a3b8")
	PlatformColor  = sprite.MustHex("#475569")
	GirderColor    = sprite.MustHex("#1f2937")
)

// StallColors are the awnings of the market stalls in front of the blocks
var StallColors = map[int]color.RGBA{
	0: colornames.Tomato,
	1: colornames.Gold,
	2: colornames.Mediumseagreen,
	3: colornames.Cornflowerblue,
}

func millis(now time.Duration) float64 {
	return float64(now) / float64(time.Millisecond)
}

// CanalStage draws the water channel, its glints, the sidewalks and the
// vegetation along them.
type CanalStage struct{}

func (s *CanalStage) Layer() Layer { return LayerStructure }

func (s *CanalStage) Draw(f *Frame) {
	g := f.Geometry
	if g == nil {
		return
	}
	c := g.Canal
	f.Surface.FillRect(0, g.Ground, g.Width, g.Bottom-g.Ground+6, SidewalkColor)
	f.Surface.FillGradient(c.X, c.Y, c.W, c.H, []Stop{{0, CanalTop}, {1, CanalDeep}})

	if f.Decor == nil {
		return
	}
	ms := millis(f.Now)
	for i, p := range f.Decor.Glints {
		a := 0.3 * (0.5 + 0.5*math.Sin(ms*0.004+float64(i)))
		f.Surface.FillRect(p.X, p.Y, 8, 2, Alpha(GlintColor, a))
	}
	for _, p := range f.Decor.Tufts {
		f.Surface.FillRect(p.X, p.Y, 2, 4, TuftColor)
		f.Surface.FillRect(p.X+3, p.Y+1, 2, 3, TuftColor)
	}
}

// BridgeStage draws the suspension bridge with its blinking deck lights
type BridgeStage struct {
	Lights int
}

func (s *BridgeStage) Layer() Layer { return LayerStructure }

func (s *BridgeStage) Draw(f *Frame) {
	g := f.Geometry
	if g == nil {
		return
	}
	b := g.Bridge
	surf := f.Surface

	surf.FillRect(b.X0, b.Y+6, b.X1-b.X0, 6, DeckFloorColor)
	surf.StrokeLine(b.X0, b.Y, b.X1, b.Y, 3, DeckColor)
	for _, x := range []float64{b.TowerL, b.TowerR} {
		surf.StrokeLine(x, b.Y+32, x, b.Y-26, 3, DeckColor)
	}
	surf.StrokeQuad(b.X0, b.Y, g.Width/2, b.Y-30, b.X1, b.Y, 1.5, CableColor)

	if s.Lights <= 0 {
		return
	}
	blink := (math.Sin(millis(f.Now)*0.003) + 1) / 2
	clr := Alpha(BridgeLight, 0.4+0.4*blink)
	step := (b.X1 - b.X0) / float64(s.Lights)
	for i := 0; i < s.Lights; i++ {
		surf.FillRect(b.X0+step*(float64(i)+0.5)-1, b.Y-4, 2, 2, clr)
	}
}

// BlocksStage draws the four flanking buildings with windows, vines,
// antennas and a row of market stalls at their feet.
type BlocksStage struct{}

func (s *BlocksStage) Layer() Layer { return LayerStructure }

func (s *BlocksStage) Draw(f *Frame) {
	g := f.Geometry
	if g == nil {
		return
	}
	surf := f.Surface
	for bi, b := range g.Blocks {
		surf.FillRect(b.X, b.Y, b.W, b.H, BlockColor)
		surf.StrokeLine(b.X+b.W/2, b.Y, b.X+b.W/2, b.Y-14, 1, AntennaColor)

		cols, rows := WindowGrid(b.Rect)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				clr := WindowDark
				if f.Decor != nil && bi < len(f.Decor.BlockWindows) && lit(f.Decor.BlockWindows[bi], r, c) {
					clr = WindowLit
				}
				surf.FillRect(b.X+6+float64(c)*WindowCell, b.Y+8+float64(r)*WindowCell, 8, 8, clr)
			}
		}

		if f.Decor != nil && bi < len(f.Decor.Vines) {
			for v, length := range f.Decor.Vines[bi] {
				x := b.X + 2 + float64(v)*4
				if b.FlipVines {
					x = b.MaxX() - 4 - float64(v)*4
				}
				surf.FillRect(x, b.Y, 2, length, TuftColor)
			}
		}

		for i := 0; i < 4; i++ {
			x := b.X + float64(i)*b.W/4 + 2
			y := g.Bottom - 24
			surf.FillRect(x, y+6, b.W/4-4, 18, DeckColor)
			surf.FillRect(x-2, y, b.W/4, 6, StallColors[i])
		}
	}
}

// TowerStage draws the tower building with its floor slabs and windows
type TowerStage struct{}

func (s *TowerStage) Layer() Layer { return LayerStructure }

func (s *TowerStage) Draw(f *Frame) {
	g := f.Geometry
	if g == nil {
		return
	}
	t := g.Tower
	surf := f.Surface
	surf.FillRect(0, t.MaxY(), g.Width, g.Height-t.MaxY(), SidewalkColor)
	surf.FillRect(t.X, t.Y, t.W, t.H, TowerWall)
	surf.StrokeLine(t.CenterX(), t.Y, t.CenterX(), t.Y-24, 2, AntennaColor)
	if int(millis(f.Now)/600)%2 == 0 {
		surf.FillRect(t.CenterX()-2, t.Y-28, 4, 4, sprite.BeaconColor)
	}

	cols := TowerWindowCols(t)
	top := t.Y
	for fi, floor := range g.Floors {
		band := floor - top
		for c := 0; c < cols; c++ {
			clr := TowerWindowOff
			if f.Decor != nil && fi < len(f.Decor.TowerWindows) && lit([][]bool{f.Decor.TowerWindows[fi]}, 0, c) {
				clr = TowerWindowLit
			}
			surf.FillRect(t.X+16+float64(c)*TowerWindowGap, top+band*0.2, 14, band*0.35, clr)
		}
		surf.FillRect(t.X, floor, t.W, 6, SlabColor)
		top = floor
	}
}

// StreetStage draws the four full-width platforms and their girders
type StreetStage struct{}

func (s *StreetStage) Layer() Layer { return LayerStructure }

func (s *StreetStage) Draw(f *Frame) {
	g := f.Geometry
	if g == nil {
		return
	}
	for _, l := range g.Lanes {
		f.Surface.FillRect(0, l.Y, g.Width, 4, PlatformColor)
		for x := 40.0; x < g.Width; x += 160 {
			f.Surface.FillRect(x, l.Y+4, 6, 18, GirderColor)
		}
	}
}
