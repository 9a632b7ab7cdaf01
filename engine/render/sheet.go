package render

import (
	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/core"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// SheetRoles is the role each archetype is shown with on the sprite sheet
var SheetRoles = map[sprite.Archetype]sprite.Role{
	sprite.ArchWalker:  sprite.RoleCleaner,
	sprite.ArchWheeled: sprite.RolePlumber,
	sprite.ArchHover:   sprite.RoleCoder,
	sprite.ArchDrone:   sprite.RoleDrone,
	sprite.ArchWorker:  sprite.RoleWorker,
}

var sheetPoses = []sprite.Pose{sprite.PoseIdle, sprite.PoseStrideA, sprite.PoseStrideB, sprite.PoseWork}

// Sheet cell padding around the robot, room for the role overlays
const (
	sheetPadX = 28.0
	sheetPadY = 8.0
)

// SheetCell returns the size of one sprite sheet cell at scale
func SheetCell(scale float64) (w, h float64) {
	return 12*scale + 2*sheetPadX, 12*scale + 3*sheetPadY
}

// SpriteSheet draws every archetype (rows) in every pose (columns) with its
// role overlay, unjittered and without bob.
func SpriteSheet(scale float64) *Surface {
	cw, ch := SheetCell(scale)
	surf := NewSurface(core.Viewport{
		Width:  int(cw) * len(sheetPoses),
		Height: int(ch) * int(sprite.NumArchetypes),
	})
	surf.FillRect(0, 0, float64(surf.Width), float64(surf.Height), TowerWindowOff)

	for arch := sprite.Archetype(0); arch < sprite.NumArchetypes; arch++ {
		role := SheetRoles[arch]
		for col, pose := range sheetPoses {
			a := agent.New(arch, role, scale, 0, sprite.NewPalette(role, nil))
			posed(a, pose)
			a.X = float64(int(cw)*col) + sheetPadX
			a.Y = float64(int(ch)*int(arch)) + sheetPadY
			DrawRobot(surf, a, 0)
		}
	}
	return surf
}

// posed puts a into the state that selects pose
func posed(a *agent.Agent, pose sprite.Pose) {
	switch pose {
	case sprite.PoseWork:
		a.State = agent.Working
	case sprite.PoseStrideA:
		a.Speed = 1
	case sprite.PoseStrideB:
		a.Speed = 1
		a.Frame = 1
	}
}
