package scene

import (
	"fmt"
	"strings"

	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/1siamBot/pixelcity/engine/population"
	"github.com/1siamBot/pixelcity/engine/render"
)

// Variant selects the scene skin: layout, population policy and stages
type Variant uint8

const (
	VariantCanal Variant = iota
	VariantTower
	VariantStreet
)

var variantNames = map[Variant]string{
	VariantCanal:  "canal",
	VariantTower:  "tower",
	VariantStreet: "street",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// Variants lists the accepted variant names
func Variants() []string {
	return []string{"canal", "tower", "street"}
}

// ParseVariant resolves a variant by name, ignoring case and surrounding
// whitespace.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return VariantCanal, fmt.Errorf("unknown variant %q (want one of %s)", name, strings.Join(Variants(), ", "))
}

// Ambient mote emission for skins that have it
const (
	AmbientChance = 0.08 // per frame
)

type skin struct {
	layout  geometry.Layout
	policy  population.Policy
	stages  []render.Stage
	ambient bool
}

// skin builds fresh stages and policy for the variant. Unknown variants
// get the canal skin.
func (v Variant) skin() skin {
	switch v {
	case VariantTower:
		return skin{
			layout: geometry.LayoutTower,
			policy: population.TowerManifest(),
			stages: []render.Stage{
				&render.SkyStage{Stops: render.DuskSky},
				&render.CloudStage{Count: 4},
				&render.SkylineStage{},
				&render.TowerStage{},
				&render.RobotStage{},
				&render.PipeStage{JointEvery: 160},
				&render.ParticleStage{},
			},
			ambient: true,
		}
	case VariantStreet:
		return skin{
			layout: geometry.LayoutStreet,
			policy: population.StreetScatter(),
			stages: []render.Stage{
				&render.SkyStage{Stops: render.NightSky},
				&render.StarStage{},
				&render.SkylineStage{},
				&render.StreetStage{},
				&render.RobotStage{},
				&render.ParticleStage{},
			},
		}
	default:
		return skin{
			layout: geometry.LayoutCanal,
			policy: population.CanalScatter(),
			stages: []render.Stage{
				&render.SkyStage{Stops: render.DaySky},
				&render.CloudStage{Count: 6},
				&render.SkylineStage{},
				&render.CanalStage{},
				&render.BridgeStage{Lights: 12},
				&render.BlocksStage{},
				&render.RobotStage{},
				&render.PipeStage{JointEvery: 120},
				&render.ParticleStage{},
			},
		}
	}
}
