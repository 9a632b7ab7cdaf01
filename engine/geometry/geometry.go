// Package geometry derives the scene's layout anchors from the viewport size.
// Everything here is a pure function of width, height and fixed ratios.
package geometry

import "math"

// Layout selects which walkable lanes a scene exposes
type Layout uint8

const (
	LayoutCanal Layout = iota
	LayoutTower
	LayoutStreet
)

// Ratios and limits, in logical pixels or fractions of the viewport
const (
	HorizonRatio = 0.55
	GroundRatio  = 0.78
	BottomRatio  = 0.95

	CanalWidthRatio = 0.26
	SidewalkMargin  = 12.0
	SidewalkInset   = 0.10

	BridgeLift      = 32.0
	BridgeFromRatio = 0.10
	BridgeToRatio   = 0.90
	BridgeTowerL    = 0.28
	BridgeTowerR    = 0.72

	TowerWidthRatio  = 0.68
	TowerMaxWidth    = 960.0
	TowerTopRatio    = 0.20
	TowerBottomRatio = 0.90
	NumFloors        = 4
)

// StreetFloors are the platform heights of the street layout
var StreetFloors = []float64{0.28, 0.45, 0.55, 0.72}

// Rect is an axis-aligned rectangle in logical pixels
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MaxX() float64    { return r.X + r.W }
func (r Rect) MaxY() float64    { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// ContainsX reports whether x lies strictly inside the horizontal span
func (r Rect) ContainsX(x float64) bool {
	return x > r.X && x < r.MaxX()
}

// Lane is a walkable horizontal band. Agents stand with their feet on Y and
// keep their whole body within [MinX, MaxX].
type Lane struct {
	MinX, MaxX float64
	Y          float64
}

// Width returns the usable lane width, never negative
func (l Lane) Width() float64 {
	return math.Max(0, l.MaxX-l.MinX)
}

// ClampX keeps an agent of width w inside the lane. When the lane is
// narrower than the agent the position collapses onto MinX.
func (l Lane) ClampX(x, w float64) float64 {
	hi := l.MaxX - w
	if hi < l.MinX {
		return l.MinX
	}
	return clamp(x, l.MinX, hi)
}

// Bridge is the deck and tower anchors of the canal bridge
type Bridge struct {
	Y              float64
	X0, X1         float64
	TowerL, TowerR float64
}

// Block is one of the flanking buildings of the canal skin
type Block struct {
	Rect
	FlipVines bool
}

// Geometry holds every anchor derived for the current viewport
type Geometry struct {
	Width, Height float64
	Layout        Layout

	Horizon float64
	Ground  float64
	Bottom  float64

	Canal  Rect
	Bridge Bridge
	Blocks []Block

	Tower  Rect
	Floors []float64

	Lanes []Lane
}

// Compute derives the anchors for a logical viewport of width × height
func Compute(width, height float64, layout Layout) *Geometry {
	width = math.Max(0, width)
	height = math.Max(0, height)

	g := &Geometry{
		Width:   width,
		Height:  height,
		Layout:  layout,
		Horizon: height * HorizonRatio,
		Ground:  height * GroundRatio,
		Bottom:  height * BottomRatio,
	}

	canalW := width * CanalWidthRatio
	g.Canal = Rect{X: width/2 - canalW/2, Y: g.Horizon, W: canalW, H: g.Bottom - g.Horizon}

	g.Bridge = Bridge{
		Y:      g.Horizon - BridgeLift,
		X0:     width * BridgeFromRatio,
		X1:     width * BridgeToRatio,
		TowerL: width * BridgeTowerL,
		TowerR: width * BridgeTowerR,
	}

	g.Blocks = blocks(width, g.Horizon, g.Bottom)

	towerW := math.Min(width*TowerWidthRatio, TowerMaxWidth)
	top := height * TowerTopRatio
	bottom := height * TowerBottomRatio
	g.Tower = Rect{X: width/2 - towerW/2, Y: top, W: towerW, H: bottom - top}
	g.Floors = make([]float64, NumFloors)
	for i := range g.Floors {
		g.Floors[i] = top + float64(i+1)*(bottom-top)/NumFloors
	}

	switch layout {
	case LayoutTower:
		for _, y := range g.Floors {
			g.Lanes = append(g.Lanes, g.lane(g.Tower.X+SidewalkMargin, g.Tower.MaxX()-SidewalkMargin, y))
		}
	case LayoutStreet:
		for _, r := range StreetFloors {
			g.Lanes = append(g.Lanes, g.lane(0, width, height*r))
		}
	default:
		g.Lanes = []Lane{
			g.lane(width*SidewalkInset, g.Canal.X-SidewalkMargin, g.Ground),
			g.lane(g.Canal.MaxX()+SidewalkMargin, width*(1-SidewalkInset), g.Ground),
		}
	}
	return g
}

// lane builds a lane clamped into the viewport; inverted spans collapse
func (g *Geometry) lane(minX, maxX, y float64) Lane {
	minX = clamp(minX, 0, g.Width)
	maxX = clamp(maxX, 0, g.Width)
	if maxX < minX {
		maxX = minX
	}
	return Lane{MinX: minX, MaxX: maxX, Y: clamp(y, 0, g.Height)}
}

// Lane returns lane i, clamping out-of-range indices to the nearest lane.
// The bool is false when the geometry has no lanes at all.
func (g *Geometry) Lane(i int) (Lane, bool) {
	if len(g.Lanes) == 0 {
		return Lane{}, false
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g.Lanes) {
		i = len(g.Lanes) - 1
	}
	return g.Lanes[i], true
}

func blocks(w, horizon, bottom float64) []Block {
	mk := func(xr, wr, h float64, flip bool) Block {
		h = math.Max(0, h)
		return Block{Rect: Rect{X: w * xr, Y: bottom - h, W: w * wr, H: h}, FlipVines: flip}
	}
	return []Block{
		mk(0.02, 0.16, bottom-horizon+10, false),
		mk(0.18, 0.14, bottom-(horizon+20), true),
		mk(0.84, 0.14, bottom-(horizon+18), false),
		mk(0.68, 0.16, bottom-(horizon+6), true),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
