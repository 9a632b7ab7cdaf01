package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/scene"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	TermFrameInterval = 16 * time.Millisecond
	// CellPixels is the logical size of one half-block pixel
	CellPixels = 8
)

var errQuit = errors.New("quit")

// termViewport maps a terminal of cols × rows cells to the scene viewport.
// Every cell shows two vertically stacked pixels.
func termViewport(cols, rows int) core.Viewport {
	return core.Viewport{Width: cols * CellPixels, Height: rows * 2 * CellPixels, Scale: 1}
}

// termTarget paints each scene frame onto the terminal
type termTarget struct {
	screen tcell.Screen
	scene  *scene.Scene
	cols   int
	rows   int
}

func (t *termTarget) Resize(vp core.Viewport) {
	t.cols = vp.Width / CellPixels
	t.rows = vp.Height / (2 * CellPixels)
	t.scene.Resize(vp)
	t.screen.Clear()
}

func (t *termTarget) Frame(now, dt time.Duration) {
	t.scene.Frame(now, dt)
	if !t.scene.Enabled() {
		return
	}
	blit(t.screen, t.scene.Surface.Downsample(t.cols, t.rows*2))
	t.screen.Show()
}

// blit writes img as upper half-blocks: the foreground is the top pixel,
// the background the bottom one.
func blit(screen tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y+1 < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(x, y)
			bottom := img.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}

func runTerm(ctx context.Context, v scene.Variant, rng core.Rand) error {
	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		// No terminal to mount on: nothing to draw, not a failure
		log.Printf("Term: no terminal available (%v), nothing to draw", err)
		return nil
	}
	screen.HideCursor()

	// The screen owns the terminal until Fini; hold log lines until then
	var held bytes.Buffer
	log.SetOutput(&held)
	defer func() {
		log.SetOutput(os.Stderr)
		os.Stderr.Write(held.Bytes())
	}()

	cols, rows := screen.Size()
	target := &termTarget{
		screen: screen,
		scene:  scene.New(termViewport(cols, rows), v, rng),
		cols:   cols,
		rows:   rows,
	}
	if !target.scene.Enabled() {
		screen.Fini()
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)

	clock := make(chan time.Duration)
	resize := make(chan core.Viewport, 1)

	// Fini unblocks PollEvent once anything stops the group
	group.Go(func() error {
		<-ctx.Done()
		screen.Fini()
		return ctx.Err()
	})

	group.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return errQuit
			case *tcell.EventResize:
				w, h := ev.Size()
				// Keep only the latest size
				select {
				case <-resize:
				default:
				}
				resize <- termViewport(w, h)
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return errQuit
				}
			}
		}
	})

	group.Go(func() error {
		ticker := time.NewTicker(TermFrameInterval)
		defer ticker.Stop()
		start := time.Now()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case t := <-ticker.C:
				select {
				case clock <- t.Sub(start):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	group.Go(func() error {
		return core.NewScheduler(core.MaxFrameDelta).Run(ctx, clock, resize, target)
	})

	log.Printf("Term: running %s scene on %dx%d cells", v, cols, rows)
	err = group.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}
