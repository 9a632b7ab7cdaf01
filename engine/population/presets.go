package population

import (
	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// CanalScatter populates the canal sidewalks: roughly one robot per
// 160×900 px of viewport, between 5 and 12.
func CanalScatter() *Scatter {
	return &Scatter{
		Min:          5,
		Max:          12,
		AreaPerAgent: 160 * 900,
		Archetypes:   []sprite.Archetype{sprite.ArchWalker, sprite.ArchWheeled, sprite.ArchHover, sprite.ArchWalker},
		Roles:        []sprite.Role{sprite.RoleCleaner, sprite.RolePlumber, sprite.RoleCoder},
		ScaleMin:     3,
		ScaleMax:     4.5,
		Boundary:     agent.BoundaryReflect,
	}
}

// StreetScatter populates the four street platforms with small welders and
// drones that wrap around the screen edges.
func StreetScatter() *Scatter {
	return &Scatter{
		Min:          4,
		Max:          8,
		AreaPerAgent: 160 * 1000,
		Archetypes:   []sprite.Archetype{sprite.ArchWorker, sprite.ArchDrone},
		Roles:        []sprite.Role{sprite.RoleWorker, sprite.RoleDrone},
		ScaleMin:     3,
		ScaleMax:     3,
		Boundary:     agent.BoundaryWrap,
	}
}

// TowerManifest staffs the four tower floors with a fixed crew of seven
func TowerManifest() *Manifest {
	return &Manifest{
		Entries: []Entry{
			{sprite.ArchWalker, sprite.RoleCleaner, 0, 0.15},
			{sprite.ArchHover, sprite.RoleCoder, 0, 0.62},
			{sprite.ArchWheeled, sprite.RolePlumber, 1, 0.30},
			{sprite.ArchWorker, sprite.RoleWorker, 1, 0.78},
			{sprite.ArchDrone, sprite.RoleDrone, 2, 0.45},
			{sprite.ArchWalker, sprite.RoleCoder, 3, 0.10},
			{sprite.ArchWheeled, sprite.RoleCleaner, 3, 0.70},
		},
		ScaleMin: 3,
		ScaleMax: 4,
		Boundary: agent.BoundaryReflect,
	}
}
