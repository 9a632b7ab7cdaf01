package render

import (
	"testing"
	"time"

	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/1siamBot/pixelcity/engine/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStage struct {
	layer Layer
	name  string
	log   *[]string
}

func (s *stubStage) Layer() Layer { return s.layer }
func (s *stubStage) Draw(*Frame) { *s.log = append(*s.log, s.name) }

func TestCompositorKeepsLayerOrder(t *testing.T) {
	var log []string
	c := &Compositor{}
	c.Add(&stubStage{LayerParticles, "particles", &log})
	c.Add(&stubStage{LayerSky, "sky", &log})
	c.Add(&stubStage{LayerAgents, "robots", &log})
	c.Add(&stubStage{LayerSky, "clouds", &log})
	c.Add(&stubStage{LayerStructure, "canal", &log})

	for i := 1; i < len(c.Stages()); i++ {
		assert.LessOrEqual(t, c.Stages()[i-1].Layer(), c.Stages()[i].Layer())
	}

	c.Compose(&Frame{Surface: NewSurface(core.Viewport{Width: 4, Height: 4})})
	assert.Equal(t, []string{"sky", "clouds", "canal", "robots", "particles"}, log)
}

func TestComposeWithoutSurfaceIsNoop(t *testing.T) {
	var log []string
	c := &Compositor{}
	c.Add(&stubStage{LayerSky, "sky", &log})
	c.Compose(&Frame{})
	c.Compose(nil)
	assert.Empty(t, log)
}

func newRobot(arch sprite.Archetype, role sprite.Role, scale, speed float64) *agent.Agent {
	a := agent.New(arch, role, scale, 1.3, sprite.NewPalette(role, nil))
	a.Speed = speed
	return a
}

func TestDrawSpriteStaysInBounds(t *testing.T) {
	archetypes := []sprite.Archetype{sprite.ArchWalker, sprite.ArchWheeled, sprite.ArchHover, sprite.ArchDrone, sprite.ArchWorker}
	for _, scale := range []float64{1, 2} {
		for _, arch := range archetypes {
			for _, speed := range []float64{30, -30} {
				for _, now := range []time.Duration{0, 317 * time.Millisecond, 2 * time.Second} {
					surf := NewSurface(core.Viewport{Width: 200, Height: 150, Scale: scale})
					a := newRobot(arch, sprite.RoleCoder, 3.7, speed)
					a.Place(geometry.Lane{MinX: 0, MaxX: 200, Y: 120}, 63.4)

					DrawSprite(surf, a, now)

					box := a.Bounds(now)
					allowed := surf.DeviceRect(box.X, box.Y, box.W, box.H)
					painted := 0
					b := surf.Bounds()
					for y := b.Min.Y; y < b.Max.Y; y++ {
						for x := b.Min.X; x < b.Max.X; x++ {
							if surf.Img.RGBAAt(x, y).A == 0 {
								continue
							}
							painted++
							require.True(t, x >= allowed.Min.X && x < allowed.Max.X && y >= allowed.Min.Y && y < allowed.Max.Y,
								"%s speed=%v scale=%v: pixel (%d,%d) outside %v", arch, speed, scale, x, y, allowed)
						}
					}
					assert.Positive(t, painted, "%s drew nothing", arch)
				}
			}
		}
	}
}

func TestDrawSpriteSkipsClassesMissingFromPalette(t *testing.T) {
	surf := NewSurface(core.Viewport{Width: 60, Height: 60})
	a := newRobot(sprite.ArchWalker, sprite.RoleCoder, 2, 0)
	a.Palette = sprite.Palette{}
	a.Palette.Set(sprite.Body, red)
	a.Place(geometry.Lane{MaxX: 60, Y: 50}, 10)

	DrawSprite(surf, a, 0)
	for i := 0; i < len(surf.Img.Pix); i += 4 {
		if surf.Img.Pix[i+3] != 0 {
			require.Equal(t, []uint8{255, 0, 0, 255}, surf.Img.Pix[i:i+4])
		}
	}
}

func TestDrawSpriteMirrorsLeftFacing(t *testing.T) {
	right := NewSurface(core.Viewport{Width: 60, Height: 60})
	left := NewSurface(core.Viewport{Width: 60, Height: 60})
	lane := geometry.Lane{MaxX: 60, Y: 50}

	a := newRobot(sprite.ArchWalker, sprite.RoleCoder, 2, 20)
	a.Place(lane, 10)
	DrawSprite(right, a, 0)
	a.Speed = -20
	DrawSprite(left, a, 0)

	box := a.Bounds(0)
	r := right.DeviceRect(box.X, box.Y, box.W, box.H)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			mx := r.Max.X - 1 - (x - r.Min.X)
			require.Equal(t, right.Img.RGBAAt(x, y), left.Img.RGBAAt(mx, y), "(%d,%d)", x, y)
		}
	}
}

func TestCleanerBroomTrailsBehind(t *testing.T) {
	lane := geometry.Lane{MaxX: 100, Y: 60}
	for _, speed := range []float64{20, -20} {
		surf := NewSurface(core.Viewport{Width: 100, Height: 80})
		a := newRobot(sprite.ArchWalker, sprite.RoleCleaner, 2, speed)
		a.Place(lane, 40)
		DrawOverlay(surf, a, 0)

		box := a.Bounds(0)
		probeY := int(box.Y + box.H + 7)
		if speed > 0 {
			assert.NotZero(t, surf.Img.RGBAAt(int(box.X)-3, probeY).A, "broom left of a right-facing robot")
		} else {
			assert.NotZero(t, surf.Img.RGBAAt(int(box.MaxX())+2, probeY).A, "broom right of a left-facing robot")
		}
	}
}

func TestWorkerTorchOnlyWhileWorking(t *testing.T) {
	lane := geometry.Lane{MaxX: 100, Y: 60}
	a := newRobot(sprite.ArchWorker, sprite.RoleWorker, 3, 20)
	a.Place(lane, 40)

	surf := NewSurface(core.Viewport{Width: 100, Height: 80})
	DrawOverlay(surf, a, 0)
	for _, v := range surf.Img.Pix {
		require.Zero(t, v)
	}

	a.State = agent.Working
	DrawOverlay(surf, a, 0)
	box := a.Bounds(0)
	assert.NotZero(t, surf.Img.RGBAAt(int(box.MaxX())+1, int(box.Y+box.H*0.4)).A)
}

func TestCodeLineBlink(t *testing.T) {
	assert.True(t, CodeLineVisible(0, 0))
	assert.True(t, CodeLineVisible(399*time.Millisecond, 0))
	assert.False(t, CodeLineVisible(400*time.Millisecond, 0))
	assert.True(t, CodeLineVisible(800*time.Millisecond, 0))
	assert.False(t, CodeLineVisible(0, 3.2), "phase shifts the cycle")
}

func TestDecorPerLayout(t *testing.T) {
	canal := NewDecor(geometry.Compute(1280, 800, geometry.LayoutCanal), core.NewRand(1))
	assert.Len(t, canal.Skyline, SkylineCount)
	assert.Len(t, canal.Glints, GlintCount)
	assert.Len(t, canal.Tufts, TuftCount)
	assert.Len(t, canal.BlockWindows, 4)
	assert.Len(t, canal.Vines, 4)
	assert.Empty(t, canal.TowerWindows)

	tg := geometry.Compute(1280, 800, geometry.LayoutTower)
	tower := NewDecor(tg, core.NewRand(1))
	require.Len(t, tower.TowerWindows, geometry.NumFloors)
	assert.Len(t, tower.TowerWindows[0], TowerWindowCols(tg.Tower))
	assert.Empty(t, tower.Glints)

	street := NewDecor(geometry.Compute(1280, 800, geometry.LayoutStreet), core.NewRand(1))
	assert.Len(t, street.Stars, StarCount)
}

func TestDecorIsReproducible(t *testing.T) {
	g := geometry.Compute(1000, 700, geometry.LayoutCanal)
	a := NewDecor(g, core.NewRand(42))
	b := NewDecor(g, core.NewRand(42))
	assert.Equal(t, a, b)
}

func TestDecorTuftsAvoidCanal(t *testing.T) {
	g := geometry.Compute(1000, 700, geometry.LayoutCanal)
	d := NewDecor(g, core.NewRand(3))
	for _, p := range d.Tufts {
		assert.False(t, g.Canal.ContainsX(p.X), "tuft at %v", p.X)
	}
}

func TestFullComposition(t *testing.T) {
	skins := map[geometry.Layout][]Stage{
		geometry.LayoutCanal:  {&SkyStage{Stops: DaySky}, &CloudStage{Count: 6}, &SkylineStage{}, &CanalStage{}, &BridgeStage{Lights: 12}, &BlocksStage{}},
		geometry.LayoutTower:  {&SkyStage{Stops: DuskSky}, &SkylineStage{}, &TowerStage{}},
		geometry.LayoutStreet: {&SkyStage{Stops: NightSky}, &StarStage{}, &StreetStage{}},
	}
	for layout, stages := range skins {
		g := geometry.Compute(320, 200, layout)
		rng := core.NewRand(7)
		c := &Compositor{}
		for _, s := range stages {
			c.Add(s)
		}
		c.Add(&RobotStage{})
		c.Add(&PipeStage{JointEvery: 120})
		c.Add(&ParticleStage{})

		ps := agent.NewParticleSystem()
		ps.EmitSpark(100, 100, rng)
		a := newRobot(sprite.ArchHover, sprite.RolePlumber, 3, 20)
		lane, _ := g.Lane(0)
		a.Place(lane, 50)

		surf := NewSurface(core.Viewport{Width: 320, Height: 200})
		c.Compose(&Frame{
			Surface:   surf,
			Now:       1500 * time.Millisecond,
			Geometry:  g,
			Decor:     NewDecor(g, rng),
			Agents:    []*agent.Agent{a},
			Particles: ps,
		})
		assert.Equal(t, uint8(255), surf.Img.RGBAAt(0, 0).A, "sky covers layout %d", layout)
	}
}

func TestSpriteSheet(t *testing.T) {
	surf := SpriteSheet(3)
	cw, ch := SheetCell(3)
	require.Equal(t, int(cw)*4, surf.Bounds().Dx())
	require.Equal(t, int(ch)*int(sprite.NumArchetypes), surf.Bounds().Dy())

	for row := 0; row < int(sprite.NumArchetypes); row++ {
		for col := 0; col < 4; col++ {
			drawn := false
			for y := row * int(ch); y < (row+1)*int(ch) && !drawn; y++ {
				for x := col * int(cw); x < (col+1)*int(cw); x++ {
					if surf.Img.RGBAAt(x, y) != TowerWindowOff {
						drawn = true
						break
					}
				}
			}
			assert.True(t, drawn, "cell %d,%d is empty", row, col)
		}
	}
}
