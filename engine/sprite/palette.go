package sprite

import (
	"image/color"

	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/lucasb-eyer/go-colorful"
)

// Role is an agent's job; it picks the palette and the task overlay
type Role uint8

const (
	RoleCleaner Role = iota
	RolePlumber
	RoleCoder
	RoleWorker
	RoleDrone
	NumRoles
)

// DefaultRole is used for roles without a palette
const DefaultRole = RoleCoder

var roleNames = [NumRoles]string{"cleaner", "plumber", "coder", "worker", "drone"}

func (r Role) String() string {
	if r < NumRoles {
		return roleNames[r]
	}
	return "unknown"
}

// AccentJitter is the maximum lightness shift applied to a role's accent
const AccentJitter = 0.08

type roleHues struct {
	body, accent string
	eye, visor   bool
	outline      bool
}

var hues = map[Role]roleHues{
	RoleCleaner: {body: "#4ade80", accent: "#a3e635", eye: true, visor: true, outline: true},
	RolePlumber: {body: "#38bdf8", accent: "#0ea5e9", eye: true, visor: true, outline: true},
	RoleCoder:   {body: "#a855f7", accent: "#f97316", eye: true, visor: true, outline: true},
	RoleWorker:  {body: "#dcdacb", accent: "#e53b44", eye: true, outline: true},
	RoleDrone:   {body: "#44d65c", accent: "#222222", visor: true, outline: true},
}

// Shared slot colours
var (
	OutlineColor = MustHex("#111827")
	EyeColor     = MustHex("#facc15")
	VisorColor   = MustHex("#67e8f9")
)

// Overlay colours for role tools
var (
	BroomHandle = MustHex("#f97316")
	BroomHead   = MustHex("#facc15")
	PipeColor   = MustHex("#64748b")
	WaterColor  = MustHex("#38bdf8")
	ScreenColor = MustHex("#020617")
	GlowColor   = MustHex("#60a5fa")
	CodeColor   = MustHex("#22c55e")
	TorchColor  = MustHex("#ffc832")
	BeaconColor = MustHex("#ef4444")
)

// Palette maps paint classes to colours for one agent. Classes not set are
// skipped when drawing; roles use different subsets on purpose.
type Palette struct {
	colors [NumClasses]color.RGBA
	set    [NumClasses]bool
}

// Color returns the colour of class c and whether the palette defines it
func (p *Palette) Color(c PaintClass) (color.RGBA, bool) {
	if c == Clear || c >= NumClasses {
		return color.RGBA{}, false
	}
	return p.colors[c], p.set[c]
}

// Set assigns a colour to class c
func (p *Palette) Set(c PaintClass, clr color.RGBA) {
	if c == Clear || c >= NumClasses {
		return
	}
	p.colors[c] = clr
	p.set[c] = true
}

// NewPalette builds the palette for role. The accent lightness is jittered
// with rng so agents of a role look related but not cloned. Unknown roles
// get the DefaultRole palette.
func NewPalette(role Role, rng core.Rand) Palette {
	h, ok := hues[role]
	if !ok {
		h = hues[DefaultRole]
	}

	var p Palette
	p.Set(Body, MustHex(h.body))
	p.Set(Accent, jitter(h.accent, rng))
	if h.outline {
		p.Set(Outline, OutlineColor)
	}
	if h.eye {
		p.Set(Eye, EyeColor)
	}
	if h.visor {
		p.Set(Visor, VisorColor)
	}
	return p
}

func jitter(hex string, rng core.Rand) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil || rng == nil {
		return MustHex(hex)
	}
	hh, cc, ll := c.Hcl()
	ll += (rng.Float64()*2 - 1) * AccentJitter
	return toRGBA(colorful.Hcl(hh, cc, ll).Clamped())
}

// MustHex parses a #rrggbb colour; invalid input yields magenta
func MustHex(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{255, 0, 255, 255}
	}
	return toRGBA(c)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
