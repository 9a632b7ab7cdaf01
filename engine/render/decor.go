package render

import (
	"math"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/ojrac/opensimplex-go"
)

// Decor counts and cell sizes
const (
	SkylineCount = 14
	GlintCount   = 24
	TuftCount    = 18
	StarCount    = 40
	VinesPerSide = 4

	WindowCell      = 14.0
	TowerWindowGap  = 28.0
	SkylineWinCellX = 8.0
	SkylineWinCellY = 10.0
)

// Point is a logical position
type Point struct {
	X, Y float64
}

// SkylineTower is one distant building
type SkylineTower struct {
	X, W, H float64
	Lit     [][]bool // [row][col]
}

// Decor holds the random decorative anchors of a scene. It is regenerated
// on every resize and read-only in between, so decoration does not flicker.
type Decor struct {
	Skyline      []SkylineTower
	Glints       []Point
	Tufts        []Point
	Stars        []Point
	BlockWindows [][][]bool  // [block][row][col]
	Vines        [][]float64 // [block][vine] length
	TowerWindows [][]bool    // [floor][col]
}

// NewDecor generates decor for g. Structured features (skyline heights,
// lit windows) follow simplex noise seeded from rng; scattered points are
// drawn from rng directly.
func NewDecor(g *geometry.Geometry, rng core.Rand) *Decor {
	noise := opensimplex.New(int64(rng.Intn(math.MaxInt32)))
	sample := func(x, y float64) float64 {
		return (noise.Eval2(x, y) + 1) / 2
	}

	d := &Decor{}

	for i := 0; i < SkylineCount; i++ {
		n := sample(float64(i)*0.6, 0)
		t := SkylineTower{
			X: float64(i)/SkylineCount*g.Width + (n-0.5)*24,
			W: 26 + sample(float64(i)*0.6, 3)*26,
			H: 40 + n*80,
		}
		cols, rows := int(t.W/SkylineWinCellX), int(t.H/SkylineWinCellY)
		t.Lit = grid(rows, cols, func(r, c int) bool {
			return sample(float64(i*8+c)*0.9, float64(r)*0.9+10) > 0.62
		})
		d.Skyline = append(d.Skyline, t)
	}

	if g.Layout == geometry.LayoutCanal {
		for i := 0; i < GlintCount; i++ {
			d.Glints = append(d.Glints, Point{
				X: g.Canal.X + rng.Float64()*g.Canal.W,
				Y: g.Canal.Y + rng.Float64()*g.Canal.H,
			})
		}
		for i := 0; i < TuftCount; i++ {
			x := rng.Float64() * g.Width
			if g.Canal.ContainsX(x) {
				x = g.Canal.X - rng.Float64()*g.Canal.X
			}
			d.Tufts = append(d.Tufts, Point{X: x, Y: g.Ground + 4 + rng.Float64()*(g.Bottom-g.Ground-8)})
		}
		for bi, b := range g.Blocks {
			cols, rows := WindowGrid(b.Rect)
			d.BlockWindows = append(d.BlockWindows, grid(rows, cols, func(r, c int) bool {
				return sample(float64(c)*0.8+float64(bi)*20, float64(r)*0.8) > 0.55
			}))
			vines := make([]float64, VinesPerSide)
			for v := range vines {
				vines[v] = b.H * (0.2 + 0.5*rng.Float64())
			}
			d.Vines = append(d.Vines, vines)
		}
	}

	if g.Layout == geometry.LayoutTower {
		cols := TowerWindowCols(g.Tower)
		for f := range g.Floors {
			d.TowerWindows = append(d.TowerWindows, grid(1, cols, func(_, c int) bool {
				return sample(float64(c)*0.7, float64(f)*1.3+40) > 0.45
			})[0])
		}
	}

	if g.Layout == geometry.LayoutStreet {
		for i := 0; i < StarCount; i++ {
			d.Stars = append(d.Stars, Point{X: rng.Float64() * g.Width, Y: rng.Float64() * g.Height * 0.25})
		}
	}
	return d
}

// WindowGrid is the window layout of a flanking block
func WindowGrid(r geometry.Rect) (cols, rows int) {
	return max(0, int((r.W-8)/WindowCell)), max(0, int((r.H-16)/WindowCell))
}

// TowerWindowCols is the number of windows per tower floor
func TowerWindowCols(r geometry.Rect) int {
	return max(0, int((r.W-24)/TowerWindowGap))
}

func grid(rows, cols int, lit func(r, c int) bool) [][]bool {
	out := make([][]bool, max(rows, 0))
	for r := range out {
		out[r] = make([]bool, max(cols, 0))
		for c := range out[r] {
			out[r][c] = lit(r, c)
		}
	}
	return out
}

// lit reads a mask cell, treating anything out of range as dark
func lit(mask [][]bool, r, c int) bool {
	if r < 0 || r >= len(mask) || c < 0 || c >= len(mask[r]) {
		return false
	}
	return mask[r][c]
}
