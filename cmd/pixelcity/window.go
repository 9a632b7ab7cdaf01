package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game. Update runs once per paint, so every
// Update is one scheduler step.
type Game struct {
	scene   *scene.Scene
	sched   *core.Scheduler
	rng     core.Rand
	variant scene.Variant
	start   time.Time

	viewport core.Viewport
	pending  core.Viewport
	resized  bool

	showHUD bool
}

func NewGame(v scene.Variant, rng core.Rand, hud bool) *Game {
	return &Game{
		sched:   core.NewScheduler(core.MaxFrameDelta),
		rng:     rng,
		variant: v,
		start:   time.Now(),
		showHUD: hud,
	}
}

func (g *Game) Update() error {
	if g.resized {
		g.resized = false
		g.viewport = g.pending
		if g.scene == nil || !g.scene.Enabled() {
			g.scene = scene.New(g.viewport, g.variant, g.rng)
		} else {
			g.scene.Resize(g.viewport)
		}
	}

	now := time.Since(g.start)
	dt := g.sched.Step(now)
	if g.scene == nil {
		return nil
	}
	g.scene.Frame(now, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene == nil || !g.scene.Enabled() {
		return
	}
	img := g.scene.Surface.Img
	if screen.Bounds().Size() != img.Bounds().Size() {
		// Resize lands on the next Update
		return
	}
	screen.WritePixels(img.Pix)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	info := fmt.Sprintf(
		"Pixel City | %s | FPS: %.0f\n%s",
		g.variant, ebiten.ActualFPS(), g.scene.Stats(),
	)
	ebitenutil.DebugPrint(screen, info)
}

// Layout renders at device resolution. A size change is recorded here and
// applied at the start of the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	vp := core.Viewport{Width: outsideWidth, Height: outsideHeight, Scale: scale}
	if vp != g.viewport {
		g.pending = vp
		g.resized = true
	} else {
		g.resized = false
	}
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}

func runWindow(v scene.Variant, rng core.Rand, width, height int, hud bool) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Pixel City")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Printf("Window: starting %s scene at %dx%d", v, width, height)
	if err := ebiten.RunGame(NewGame(v, rng, hud)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
