package pacman

// Level describes one campaign stage.
// Move deltas are added to the configured ticks-per-cell cadences, so a
// negative delta makes that creature faster.
type Level struct {
	Name   string
	Layout []string

	PacmanDelta   int
	GhostDelta    int
	GhostSlowdown int // ticks added to the ghost cadence while transform is active

	CooldownSeconds  int
	SpeedSeconds     int
	TransformSeconds int
}

// Levels holds the campaign in play order.
var Levels = []Level{
	{
		Name: "Classic",
		Layout: []string{
			"###################",
			"#........#........#",
			"#.##.###.#.###.##.#",
			"#..o...........o..#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.###.#.###.####",
			"####.#.......#.####",
			"####.#.## ##.#.####",
			".......#  $#.......",
			"####.#.#####.#.####",
			"####.#.......#.####",
			"####.#.#####.#.####",
			"#..#.....@.....#..#",
			"##.#.#.#####.#.#.##",
			"#.o..#...#...#.o..#",
			"#.######.#.######.#",
			"#.................#",
			"###################",
		},
		CooldownSeconds:  10,
		SpeedSeconds:     5,
		TransformSeconds: 5,
	},
	{
		Name: "Open Gates",
		Layout: []string{
			"######### #########",
			"#........ ........#",
			"#.##.###.#.###.##.#",
			"#..o...........o..#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.###.#.###.####",
			"####.#.......#.####",
			"####.#.## ##.#.####",
			".......#$$$#.......",
			"####.#.#####.#.####",
			"####.#.......#.####",
			"####.#.#####.#.####",
			"#..#.....@.....#..#",
			"##.#.#.#####.#.#.##",
			"#.o..#...#...#.o..#",
			"#.######.#.######.#",
			"#.................#",
			"######### #########",
		},
		GhostDelta:       1,
		GhostSlowdown:    2,
		CooldownSeconds:  12,
		SpeedSeconds:     5,
		TransformSeconds: 5,
	},
	{
		Name: "Long Hall",
		Layout: []string{
			"#############.#####",
			"#........#........#",
			"#.##.###.#.###.##.#",
			"#..o...........o..#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.###.#.###.####",
			"####.#.......#.####",
			"####.#.## ##.#.####",
			"#......#$$$#......#",
			"####.#.#####.#.####",
			"####.#.......#.####",
			"####.#.#####.#.####",
			"#........#........#",
			"#.##.###.#.###.##.#",
			"#..#.....@.....#..#",
			"##.#.#.#####.#.#.##",
			"#.o..#...#...#.o..#",
			"#.######.#.######.#",
			"#.................#",
			"#############.#####",
		},
		PacmanDelta:      -1,
		GhostDelta:       -1,
		GhostSlowdown:    3,
		CooldownSeconds:  15,
		SpeedSeconds:     5,
		TransformSeconds: 5,
	},
	{
		Name: "Crossroads",
		Layout: []string{
			"#########.#########",
			"#o.......+.......o#",
			"#.##.###.#.###.##.#",
			"#.##.###.#.###.##.#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.###.#.###.####",
			"####.#.......#.####",
			"####.#.##.##.#.####",
			".......#$$$#.......",
			"####.#.#####.#.####",
			"####.#.......#.####",
			"####.#.#####.#.####",
			"#........@........#",
			"#.##.###.#.###.##.#",
			"#o.#.....#.....#.o#",
			"##.#.#.#####.#.#.##",
			"#....#...#...#....#",
			"#.######.#.######.#",
			"#########.#########",
		},
		PacmanDelta:      -1,
		GhostDelta:       -2,
		GhostSlowdown:    3,
		CooldownSeconds:  15,
		SpeedSeconds:     4,
		TransformSeconds: 4,
	},
	{
		Name: "Labyrinth",
		Layout: []string{
			"#########.#########",
			"#o...#...+...#...o#",
			"#.##.#.#####.#.##.#",
			"#.#.............#.#",
			"#.#.##.##.##.##.#.#",
			"#......#...#......#",
			"###.##.#.#.#.##.###",
			"....#.........#....",
			"###.#.###.###.#.###",
			"#.....#.$$$.#.....#",
			"#.###.#.###.#.###.#",
			"#.#.....#.#.....#.#",
			"#.#.###.....###.#.#",
			"#...#...#@#...#...#",
			"###.#.#.....#.#.###",
			"....#.#.###.#.#....",
			"###.#.#.....#.#.###",
			"#.....#.###.#.....#",
			"#.##.....#.....##.#",
			"#o...###...###...o#",
			"#########.#########",
		},
		PacmanDelta:      -1,
		GhostDelta:       -3,
		GhostSlowdown:    4,
		CooldownSeconds:  18,
		SpeedSeconds:     4,
		TransformSeconds: 4,
	},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at a 0-based index, or nil when out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = l.Name
	}
	return names
}
