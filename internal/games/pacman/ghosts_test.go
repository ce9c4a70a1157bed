package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/pathfind"
)

// twinRoutes has two equal-length routes from the ghost house to Pac-Man.
var twinRoutes = []string{
	"#####",
	"#$..#",
	"#.#.#",
	"#..@#",
	"#####",
}

func newBrain(t *testing.T, layout []string, coop bool) (*Board, *brain) {
	t.Helper()
	b, err := ParseBoard(layout)
	require.NoError(t, err)
	gc := config.DefaultPacmanConfig().Ghosts
	return b, &brain{
		board:        b,
		finder:       NewFinder(b, gc),
		chaseRadius:  10,
		wanderRadius: gc.WanderRadius,
		cooperative:  coop,
		penalty:      4,
	}
}

func ghostAt(c pathfind.Cell) *Ghost {
	return &Ghost{Pos: c, From: c, Spawn: c, Alive: true}
}

func firstIndex(n int) int { return 0 }

func TestAIPassSpreadsCooperativeGhosts(t *testing.T) {
	b, br := newBrain(t, twinRoutes, true)
	start := b.GhostSpawns()[0]
	ghosts := []*Ghost{ghostAt(start), ghostAt(start)}

	br.pass(ghosts, world{pacman: b.PacmanSpawn(), intn: firstIndex})

	assert.Equal(t, pathfind.Right, ghosts[0].Dir)
	assert.Equal(t, pathfind.Down, ghosts[1].Dir, "second ghost avoids the first one's route")
	assert.Equal(t, []pathfind.Cell{pathfind.C(1, 2), pathfind.C(1, 3), pathfind.C(2, 3), pathfind.C(3, 3)}, ghosts[1].Path())
}

func TestAIPassWithoutCooperationConverges(t *testing.T) {
	b, br := newBrain(t, twinRoutes, false)
	start := b.GhostSpawns()[0]
	ghosts := []*Ghost{ghostAt(start), ghostAt(start)}

	br.pass(ghosts, world{pacman: b.PacmanSpawn(), intn: firstIndex})

	assert.Equal(t, pathfind.Right, ghosts[0].Dir)
	assert.Equal(t, pathfind.Right, ghosts[1].Dir)
}

func TestAIPassIsFreshEveryTick(t *testing.T) {
	b, br := newBrain(t, twinRoutes, true)
	start := b.GhostSpawns()[0]
	ghosts := []*Ghost{ghostAt(start), ghostAt(start)}
	w := world{pacman: b.PacmanSpawn(), intn: firstIndex}

	br.pass(ghosts, w)
	br.pass(ghosts, w)

	// Claims from the previous pass must not leak into the next one.
	assert.Equal(t, pathfind.Right, ghosts[0].Dir)
	assert.Equal(t, pathfind.Down, ghosts[1].Dir)
}

func TestAIChaseRadius(t *testing.T) {
	b, br := newBrain(t, Levels[0].Layout, true)
	br.chaseRadius = 5
	g := ghostAt(pathfind.C(9, 11))

	br.pass([]*Ghost{g}, world{pacman: b.PacmanSpawn(), megas: []pathfind.Cell{pathfind.C(3, 3)}, intn: firstIndex})
	target, ok := g.Target()
	require.True(t, ok)
	assert.Equal(t, b.PacmanSpawn(), target, "Pac-Man two cells away is chased")

	far := ghostAt(pathfind.C(1, 1))
	megas := []pathfind.Cell{pathfind.C(3, 3), pathfind.C(15, 3)}
	br.pass([]*Ghost{far}, world{pacman: b.PacmanSpawn(), megas: megas, intn: firstIndex})
	target, _ = far.Target()
	assert.Equal(t, pathfind.C(3, 3), target, "out of range ghosts patrol")
}

func TestAIPatrolSkipsPreviousTarget(t *testing.T) {
	b, br := newBrain(t, Levels[0].Layout, true)
	br.chaseRadius = 0
	megas := []pathfind.Cell{pathfind.C(3, 3), pathfind.C(15, 3), pathfind.C(2, 15), pathfind.C(15, 15)}
	w := world{pacman: b.PacmanSpawn(), megas: megas, intn: firstIndex}

	g := ghostAt(pathfind.C(9, 7))
	br.pass([]*Ghost{g}, w)
	first, _ := g.Target()
	assert.Equal(t, megas[0], first)

	// Reaching the target frees the ghost to pick the next pellet.
	g.Pos = first
	br.patrolCursor = 0
	br.pass([]*Ghost{g}, w)
	second, _ := g.Target()
	assert.Equal(t, megas[1], second, "previous target is skipped")
}

func TestAIWanderWhenNoPelletForGhost(t *testing.T) {
	b, br := newBrain(t, Levels[0].Layout, true)
	br.chaseRadius = 0
	g := ghostAt(pathfind.C(9, 7))

	br.pass([]*Ghost{g}, world{pacman: b.PacmanSpawn(), intn: firstIndex})
	target, ok := g.Target()
	require.True(t, ok)
	assert.Greater(t, target.Manhattan(g.Pos), br.wanderRadius)
	assert.False(t, b.IsTeleport(target))
}

func TestAIWanderWhenGhostsOutnumberPellets(t *testing.T) {
	b, br := newBrain(t, Levels[0].Layout, true)
	br.chaseRadius = 0
	megas := []pathfind.Cell{pathfind.C(3, 3), pathfind.C(15, 3)}
	ghosts := []*Ghost{ghostAt(pathfind.C(9, 7)), ghostAt(pathfind.C(9, 7))}

	br.pass(ghosts, world{pacman: b.PacmanSpawn(), megas: megas, intn: firstIndex})

	for i, g := range ghosts {
		target, ok := g.Target()
		require.True(t, ok)
		assert.NotContains(t, megas, target, "ghost %d", i)
		assert.Greater(t, target.Manhattan(g.Pos), br.wanderRadius, "ghost %d", i)
	}
	assert.Zero(t, br.patrolCursor, "nobody patrols")
}

// fixedRouter returns the same route for every query.
type fixedRouter []pathfind.Cell

func (r fixedRouter) FindPath(_, _ pathfind.Cell, _ []pathfind.Cell, _ int) ([]pathfind.Cell, bool) {
	return r, true
}

func TestAIPassPanicsOnDetachedRoute(t *testing.T) {
	b, br := newBrain(t, twinRoutes, false)
	br.finder = fixedRouter{pathfind.C(3, 3)}
	g := ghostAt(b.GhostSpawns()[0])
	g.Dir = pathfind.Right

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		br.pass([]*Ghost{g}, world{pacman: b.PacmanSpawn(), intn: firstIndex})
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "a route that skips cells must not be ignored")
	assert.ErrorIs(t, err, pathfind.ErrInvalidPath)
	assert.Contains(t, err.Error(), "ghost 0")
	assert.Equal(t, pathfind.Right, g.Dir, "direction is not replaced by a default")
}

func TestAIDeadGhostReturnsAndRevives(t *testing.T) {
	b, br := newBrain(t, Levels[0].Layout, true)
	spawn := b.GhostSpawns()[0]
	g := ghostAt(pathfind.C(9, 7))
	g.Spawn = spawn
	g.Alive = false

	br.pass([]*Ghost{g}, world{pacman: b.PacmanSpawn(), intn: firstIndex})
	require.NotEmpty(t, g.Path())
	assert.Equal(t, spawn, g.Path()[len(g.Path())-1], "dead ghosts head home")
	assert.False(t, g.Alive)

	g.Pos = spawn
	br.pass([]*Ghost{g}, world{pacman: b.PacmanSpawn(), intn: func(int) int { return 2 }})
	assert.True(t, g.Alive)
	assert.Equal(t, FormBlue, g.Form)
}

func TestAIGhostOnTeleportKeepsHeading(t *testing.T) {
	b, br := newBrain(t, Levels[0].Layout, true)
	g := ghostAt(pathfind.C(0, 9))
	g.Dir = pathfind.Left
	g.target = cellPtr(pathfind.C(18, 9))

	br.pass([]*Ghost{g}, world{pacman: b.PacmanSpawn(), intn: firstIndex})

	assert.Equal(t, pathfind.Left, g.Dir)
	_, ok := g.Target()
	assert.False(t, ok, "a teleport target is dropped")
}

func TestAIUnreachableTargetHolds(t *testing.T) {
	b, br := newBrain(t, []string{
		"#######",
		"#$.#@.#",
		"#######",
	}, true)
	g := ghostAt(b.GhostSpawns()[0])
	g.Dir = pathfind.Right

	br.pass([]*Ghost{g}, world{pacman: b.PacmanSpawn(), intn: firstIndex})

	assert.Equal(t, pathfind.None, g.Dir)
	assert.Nil(t, g.Path())
}

func TestFormCycle(t *testing.T) {
	assert.Equal(t, FormGreen, FormRed.Next())
	assert.Equal(t, FormBlue, FormGreen.Next())
	assert.Equal(t, FormRed, FormBlue.Next())
	assert.Equal(t, "blue", FormBlue.String())
	assert.Equal(t, "unknown", Form(9).String())
}
