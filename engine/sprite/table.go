package sprite

// Archetype is the movement/shape category of an agent
type Archetype uint8

const (
	ArchWalker Archetype = iota
	ArchWheeled
	ArchHover
	ArchDrone
	ArchWorker
	NumArchetypes
)

var archetypeNames = [NumArchetypes]string{"walker", "wheeled", "hover", "drone", "worker"}

func (a Archetype) String() string {
	if a < NumArchetypes {
		return archetypeNames[a]
	}
	return "unknown"
}

// Mirrors reports whether the sprite flips horizontally with facing.
// Drones are symmetric and always drawn as-is.
func (a Archetype) Mirrors() bool {
	return a != ArchDrone
}

// Pose selects the frame of an archetype
type Pose uint8

const (
	PoseIdle Pose = iota
	PoseStrideA
	PoseStrideB
	PoseWork
	NumPoses
)

var (
	walkerIdle = MustParse(
		"....1111....",
		"...122221...",
		"..12222221..",
		"..12233221..",
		".1122222211.",
		".1222222221.",
		".1222552221.",
		".1222222221.",
		"..11....11..",
		".11......11.",
		"1..........1",
		"1..11..11..1",
	)
	walkerStrideA = MustParse(
		"....1111....",
		"...122221...",
		"..12222221..",
		"..12222331..",
		".1122222211.",
		".1222222221.",
		".1222552221.",
		".1222222221.",
		"..11....11..",
		"..11.....11.",
		".11.......11",
		".1.........1",
	)
	walkerStrideB = MustParse(
		"....1111....",
		"...122221...",
		"..12222221..",
		"..12222331..",
		".1122222211.",
		".1222222221.",
		".1222552221.",
		".1222222221.",
		"...11..11...",
		"...11..11...",
		"...11..11...",
		"..111..111..",
	)
	walkerWork = MustParse(
		"....1111....",
		"...122221...",
		"..12222221..",
		"..12222331..",
		".11222222111",
		".12222222255",
		".12225522211",
		".1222222221.",
		"..11....11..",
		"..11....11..",
		"..11....11..",
		".111....111.",
	)

	wheeledIdle = MustParse(
		".....1......",
		"....111.....",
		"..11111111..",
		"..12222221..",
		"..12244331..",
		"..12222221..",
		".1125555211.",
		".1111111111.",
		".1.11..11.1.",
		"..11....11..",
	)
	wheeledRoll = MustParse(
		".....1......",
		"....111.....",
		"..11111111..",
		"..12222221..",
		"..12244331..",
		"..12222221..",
		".1125555211.",
		".1111111111.",
		".11.1..1.11.",
		"..11....11..",
	)
	wheeledWork = MustParse(
		".....1......",
		"....111.....",
		"..11111111..",
		"..12222221..",
		"..12244331..",
		"..122222215.",
		".11255552111",
		".1111111111.",
		".1.11..11.1.",
		"..11....11..",
	)

	hoverIdle = MustParse(
		"....1111....",
		"...144431...",
		"..12222221..",
		".1222222221.",
		".1222552221.",
		".1222222221.",
		"..12222221..",
		"...111111...",
		"....5..5....",
		"....5..5....",
	)
	hoverWork = MustParse(
		"....1111....",
		"...144431...",
		"..12222221..",
		".1222222221.",
		".12225522255",
		".1222222221.",
		"..12222221..",
		"...111111...",
		"....5..5....",
		"....5..5....",
	)

	droneIdle = MustParse(
		"111....111",
		"..1....1..",
		"..111111..",
		".12244221.",
		"..122221..",
		"...5..5...",
	)
	droneSpin = MustParse(
		".1......1.",
		"..1....1..",
		"..111111..",
		".12244221.",
		"..122221..",
		"...5..5...",
	)
	droneWork = MustParse(
		"111....111",
		"..1....1..",
		"..111111..",
		".12244221.",
		"..122221..",
		"....55....",
	)

	workerIdle = MustParse(
		".222.",
		".5.5.",
		"22222",
		".222.",
		".2.2.",
	)
	workerStride = MustParse(
		".222.",
		".5.5.",
		"22222",
		".222.",
		"2...2",
	)
	workerWeld = MustParse(
		"..22.",
		"..25.",
		".2222",
		".2222",
		".2.2.",
	)
)

var table = map[Archetype][NumPoses]*Definition{
	ArchWalker:  {walkerIdle, walkerStrideA, walkerStrideB, walkerWork},
	ArchWheeled: {wheeledIdle, wheeledIdle, wheeledRoll, wheeledWork},
	ArchHover:   {hoverIdle, hoverIdle, nil, hoverWork},
	ArchDrone:   {droneIdle, droneIdle, droneSpin, droneWork},
	ArchWorker:  {workerIdle, workerStride, workerIdle, workerWeld},
}

// Lookup returns the bitmap for an archetype pose. Missing poses fall back
// to the idle frame and unknown archetypes to the walker.
func Lookup(a Archetype, p Pose) *Definition {
	poses, ok := table[a]
	if !ok {
		poses = table[ArchWalker]
	}
	if p < NumPoses && poses[p] != nil {
		return poses[p]
	}
	return poses[PoseIdle]
}

// Size returns the idle bitmap dimensions of an archetype in cells. All
// poses of an archetype share these dimensions.
func Size(a Archetype) (cols, rows int) {
	d := Lookup(a, PoseIdle)
	return d.Cols(), d.Rows()
}
