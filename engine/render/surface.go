package render

import (
	"image"
	"image/color"
	"math"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// Surface is the CPU pixel buffer the compositor paints into. Callers use
// logical coordinates; the buffer itself is sized in device pixels.
type Surface struct {
	Width  int // logical
	Height int // logical
	Scale  float64
	Img    *image.RGBA
}

// NewSurface allocates a surface backing vp at its device scale
func NewSurface(vp core.Viewport) *Surface {
	scale := vp.DeviceScale()
	w := int(math.Ceil(float64(max(vp.Width, 0)) * scale))
	h := int(math.Ceil(float64(max(vp.Height, 0)) * scale))
	return &Surface{
		Width:  vp.Width,
		Height: vp.Height,
		Scale:  scale,
		Img:    image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Bounds returns the device pixel bounds
func (s *Surface) Bounds() image.Rectangle {
	return s.Img.Bounds()
}

// DeviceRect maps a logical rectangle to the device pixels it covers
func (s *Surface) DeviceRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x*s.Scale)),
		int(math.Floor(y*s.Scale)),
		int(math.Ceil((x+w)*s.Scale)),
		int(math.Ceil((y+h)*s.Scale)),
	)
}

// Clear resets every pixel to transparent black
func (s *Surface) Clear() {
	clear(s.Img.Pix)
}

// FillRect paints a logical rectangle, blending source-over and clipping
// to the surface.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.FillBox(x, y, x+w, y+h, c)
}

// FillBox is FillRect given the corners (x0, y0) and (x1, y1)
func (s *Surface) FillBox(x0, y0, x1, y1 float64, c color.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r := image.Rect(
		int(math.Floor(x0*s.Scale)),
		int(math.Floor(y0*s.Scale)),
		int(math.Ceil(x1*s.Scale)),
		int(math.Ceil(y1*s.Scale)),
	).Intersect(s.Img.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(s.Img, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

// Stop is one colour stop of a vertical gradient, Pos in [0, 1]
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// FillGradient paints a vertical gradient over a logical rectangle,
// interpolating the stops in RGB.
func (s *Surface) FillGradient(x, y, w, h float64, stops []Stop) {
	if len(stops) == 0 || w <= 0 || h <= 0 {
		return
	}
	r := s.DeviceRect(x, y, w, h).Intersect(s.Img.Bounds())
	top := y * s.Scale
	span := h * s.Scale
	for py := r.Min.Y; py < r.Max.Y; py++ {
		t := (float64(py) + 0.5 - top) / span
		row := image.Rect(r.Min.X, py, r.Max.X, py+1)
		xdraw.Draw(s.Img, row, image.NewUniform(gradientAt(stops, t)), image.Point{}, xdraw.Over)
	}
}

func gradientAt(stops []Stop, t float64) color.RGBA {
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Pos {
			span := b.Pos - a.Pos
			if span <= 0 {
				return b.Color
			}
			ca, _ := colorful.MakeColor(a.Color)
			cb, _ := colorful.MakeColor(b.Color)
			rr, gg, bb := ca.BlendRgb(cb, (t-a.Pos)/span).Clamped().RGB255()
			return color.RGBA{rr, gg, bb, 255}
		}
	}
	return stops[len(stops)-1].Color
}

// StrokeLine draws a line of the given logical width
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.FillRect(x0+dx*t-half, y0+dy*t-half, width, width, c)
	}
}

// StrokeQuad draws a quadratic Bézier from (x0,y0) to (x1,y1) via (cx,cy)
func (s *Surface) StrokeQuad(x0, y0, cx, cy, x1, y1, width float64, c color.Color) {
	const segments = 32
	px, py := x0, y0
	for i := 1; i <= segments; i++ {
		t := float64(i) / segments
		u := 1 - t
		qx := u*u*x0 + 2*u*t*cx + t*t*x1
		qy := u*u*y0 + 2*u*t*cy + t*t*y1
		s.StrokeLine(px, py, qx, qy, width, c)
		px, py = qx, qy
	}
}

// Downsample resamples the surface to cols × rows pixels
func (s *Surface) Downsample(cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(cols, 0), max(rows, 0)))
	if dst.Bounds().Empty() || s.Img.Bounds().Empty() {
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.Img, s.Img.Bounds(), xdraw.Src, nil)
	return dst
}

// Alpha returns c with its opacity scaled to a in [0, 1]
func Alpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{c.R, c.G, c.B, uint8(float64(c.A)*a + 0.5)}
}
