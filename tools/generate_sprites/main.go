package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/render"
	"github.com/1siamBot/pixelcity/engine/scene"
)

// Renders the robot sprite sheet and one still per scene variant into
// assets/ (or the directory given as the first argument).
func main() {
	base := "assets"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}
	spritesDir := filepath.Join(base, "sprites")
	scenesDir := filepath.Join(base, "scenes")
	os.MkdirAll(spritesDir, 0755)
	os.MkdirAll(scenesDir, 0755)

	for _, scale := range []float64{2, 4} {
		sheet := render.SpriteSheet(scale)
		savePNG(filepath.Join(spritesDir, fmt.Sprintf("robots_%gx.png", scale)), sheet.Img)
	}

	// Two seconds in, so agents have moved and some are working
	const frames = 120
	tick := 16 * time.Millisecond
	for _, name := range scene.Variants() {
		v, err := scene.ParseVariant(name)
		if err != nil {
			panic(err)
		}
		s := scene.New(core.Viewport{Width: 1280, Height: 800}, v, core.NewRand(1))
		for i := 1; i <= frames; i++ {
			s.Frame(time.Duration(i)*tick, tick)
		}
		savePNG(filepath.Join(scenesDir, name+".png"), s.Surface.Img)
	}

	fmt.Println("✅ All sprites generated in", base)
}

func savePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
	fmt.Println("  →", path)
}
