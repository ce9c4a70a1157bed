package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isWall(r rune) bool { return r == '#' }

var testMazes = map[string][]string{
	"open": {
		".....",
		".....",
		".....",
		".....",
		".....",
	},
	"pillars": {
		".......",
		".#.#.#.",
		".......",
		".#.#.#.",
		".......",
	},
	"corridors": {
		"#########",
		"#...#...#",
		"#.#.#.#.#",
		"#.#...#.#",
		"#.#####.#",
		"#.......#",
		"#########",
	},
	"detour": {
		"#######",
		"#.....#",
		"#.###.#",
		"#.#.#.#",
		"#.#.#.#",
		"#...#.#",
		"#######",
	},
	"enclosed": {
		"#######",
		"#.....#",
		"#.###.#",
		"#.#.#.#",
		"#.###.#",
		"#.....#",
		"#######",
	},
	"arcade": {
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
}

// bfsDistance is an independent shortest-path oracle.
func bfsDistance(g *Grid, start, goal Cell) (int, bool) {
	if start == goal {
		return 0, true
	}
	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.neighbors() {
			if !g.Passable(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			if n == goal {
				return dist[n], true
			}
			queue = append(queue, n)
		}
	}
	return 0, false
}

// checkPathShape verifies adjacency, obstacle avoidance and endpoints.
func checkPathShape(t *testing.T, g *Grid, start, goal Cell, path []Cell) {
	t.Helper()
	if len(path) == 0 {
		assert.Equal(t, start, goal, "empty path for distinct start and goal")
		return
	}
	assert.Equal(t, goal, path[len(path)-1], "path must end at goal")
	prev := start
	for _, c := range path {
		assert.NotEqual(t, start, c, "path must not revisit start")
		assert.Equal(t, Empty, g.Kind(c), "path crosses obstacle at %s", c)
		assert.Equal(t, 1, prev.Manhattan(c), "non-adjacent step %s -> %s", prev, c)
		prev = c
	}
}

func TestFindPathOpenGrid(t *testing.T) {
	g := ParseGrid(testMazes["open"], isWall)
	f := NewFinder(g)

	path, ok := f.FindPath(C(0, 0), C(4, 4), nil, 0)
	require.True(t, ok)
	assert.Len(t, path, 8)
	checkPathShape(t, g, C(0, 0), C(4, 4), path)

	dir, err := DirectionTo(C(0, 0), path)
	require.NoError(t, err)
	assert.Contains(t, []Direction{Right, Down}, dir)

	again, ok := f.FindPath(C(0, 0), C(4, 4), nil, 0)
	require.True(t, ok)
	assert.Equal(t, path, again, "identical inputs must give identical paths")
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	g := ParseGrid(testMazes["open"], isWall)
	res := NewFinder(g).Search(C(2, 2), C(2, 2), nil, 0)

	require.True(t, res.Found)
	require.NotNil(t, res.Path)
	assert.Empty(t, res.Path)

	dir, err := DirectionTo(C(2, 2), res.Path)
	require.NoError(t, err)
	assert.Equal(t, None, dir)
}

func TestFindPathMatchesBFS(t *testing.T) {
	for name, rows := range testMazes {
		t.Run(name, func(t *testing.T) {
			g := ParseGrid(rows, isWall)
			cells := g.EmptyCells()
			optimal := NewFinder(g, WithAccumulatedCost())
			classic := NewFinder(g)

			for i, start := range cells {
				// Sample starts on the big map to keep the test quick.
				if len(cells) > 100 && i%7 != 0 {
					continue
				}
				for _, goal := range cells {
					want, reachable := bfsDistance(g, start, goal)

					path, ok := optimal.FindPath(start, goal, nil, 0)
					require.Equal(t, reachable, ok, "%s -> %s reachability", start, goal)
					if ok {
						assert.Len(t, path, want, "%s -> %s length", start, goal)
						checkPathShape(t, g, start, goal, path)
					}

					path, ok = classic.FindPath(start, goal, nil, 0)
					require.Equal(t, reachable, ok, "%s -> %s reachability", start, goal)
					if ok {
						assert.GreaterOrEqual(t, len(path), want)
						checkPathShape(t, g, start, goal, path)
					}
				}
			}
		})
	}
}

func TestFindPathEnclosedGoal(t *testing.T) {
	g := ParseGrid(testMazes["enclosed"], isWall)

	for _, f := range []*Finder{NewFinder(g), NewFinder(g, WithAccumulatedCost())} {
		res := f.Search(C(1, 1), C(3, 3), nil, 0)
		assert.False(t, res.Found)
		assert.Nil(t, res.Path)
		assert.False(t, res.Truncated)
		// Every cell of the outer ring is expanded before giving up.
		assert.Equal(t, 16, res.Expanded)
	}
}

func TestFindPathGoalIsObstacle(t *testing.T) {
	g := ParseGrid(testMazes["corridors"], isWall)

	res := NewFinder(g).Search(C(1, 1), C(0, 0), nil, 0)
	assert.False(t, res.Found)
	assert.Zero(t, res.Expanded)

	_, ok := NewFinder(g).FindPath(C(1, 1), C(-3, 40), nil, 0)
	assert.False(t, ok, "out-of-bounds goal is impassable")
}

func TestFindPathStartInsideWall(t *testing.T) {
	g := ParseGrid([]string{
		"###",
		"#..",
		"###",
	}, isWall)

	path, ok := NewFinder(g).FindPath(C(0, 1), C(2, 1), nil, 0)
	require.True(t, ok)
	assert.Equal(t, []Cell{C(1, 1), C(2, 1)}, path)
}

func TestFindPathMaxExpansions(t *testing.T) {
	g := ParseGrid(testMazes["open"], isWall)

	res := NewFinder(g, WithMaxExpansions(3)).Search(C(0, 0), C(4, 4), nil, 0)
	assert.False(t, res.Found)
	assert.True(t, res.Truncated)
	assert.Equal(t, 3, res.Expanded)

	res = NewFinder(g, WithMaxExpansions(1000)).Search(C(0, 0), C(4, 4), nil, 0)
	assert.True(t, res.Found)
	assert.False(t, res.Truncated)
}

var twoRoutes = []string{
	"#####",
	"#...#",
	"#.#.#",
	"#...#",
	"#####",
}

var (
	routeA = []Cell{C(2, 1), C(3, 1), C(3, 2), C(3, 3)}
	routeB = []Cell{C(1, 2), C(1, 3), C(2, 3), C(3, 3)}
)

func TestFindPathTieBreakPrefersEarlierInsertion(t *testing.T) {
	g := ParseGrid(twoRoutes, isWall)

	for _, f := range []*Finder{NewFinder(g), NewFinder(g, WithAccumulatedCost())} {
		path, ok := f.FindPath(C(1, 1), C(3, 3), nil, 0)
		require.True(t, ok)
		// The right neighbor is inserted before the down neighbor.
		assert.Equal(t, routeA, path)
	}
}

func TestFindPathAvoidPrefersAlternative(t *testing.T) {
	g := ParseGrid(twoRoutes, isWall)
	avoid := routeA[:3]

	for _, f := range []*Finder{NewFinder(g), NewFinder(g, WithAccumulatedCost())} {
		path, ok := f.FindPath(C(1, 1), C(3, 3), avoid, 4)
		require.True(t, ok)
		assert.Equal(t, routeB, path)

		// A zero or negative penalty disables the bias.
		path, ok = f.FindPath(C(1, 1), C(3, 3), avoid, 0)
		require.True(t, ok)
		assert.Equal(t, routeA, path)
		path, ok = f.FindPath(C(1, 1), C(3, 3), avoid, -5)
		require.True(t, ok)
		assert.Equal(t, routeA, path)
	}
}

func TestFindPathAvoidIsNotABlock(t *testing.T) {
	g := ParseGrid([]string{
		"#####",
		"#...#",
		"###.#",
		"#...#",
		"#####",
	}, isWall)

	path, ok := NewFinder(g).FindPath(C(1, 1), C(3, 3), routeA, 100)
	require.True(t, ok)
	assert.Equal(t, routeA, path)
}

func TestUsedSectorsSpreadsPursuers(t *testing.T) {
	g := ParseGrid(twoRoutes, isWall)
	f := NewFinder(g)
	used := NewUsedSectors()

	first, ok := f.FindPath(C(1, 1), C(3, 3), used.Cells(), 4)
	require.True(t, ok)
	used.Add(first)

	second, ok := f.FindPath(C(1, 1), C(3, 3), used.Cells(), 4)
	require.True(t, ok)

	assert.Equal(t, routeA, first)
	assert.Equal(t, routeB, second)
}

func TestFindPathDeterministicWithAvoid(t *testing.T) {
	g := ParseGrid(testMazes["arcade"], isWall)
	f := NewFinder(g)
	avoid := []Cell{C(9, 13), C(8, 13), C(7, 13), C(10, 13)}

	first := f.Search(C(9, 13), C(1, 1), avoid, 4)
	second := f.Search(C(9, 13), C(1, 1), avoid, 4)

	require.True(t, first.Found)
	assert.Equal(t, first, second)
	checkPathShape(t, g, C(9, 13), C(1, 1), first.Path)
}
