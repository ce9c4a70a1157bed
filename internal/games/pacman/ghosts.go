package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/pathfind"
)

// Form is the color shared by Pac-Man and ghosts. A ghost can only be
// eaten by a Pac-Man of the same form.
type Form int

const (
	FormRed Form = iota
	FormGreen
	FormBlue
	formCount
)

// String returns the lowercase form name.
func (f Form) String() string {
	switch f {
	case FormRed:
		return "red"
	case FormGreen:
		return "green"
	case FormBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Next returns the following form in the red, green, blue cycle.
func (f Form) Next() Form {
	return (f + 1) % formCount
}

// Ghost is one pursuer.
type Ghost struct {
	Pos   pathfind.Cell
	From  pathfind.Cell // position before the latest move
	Spawn pathfind.Cell
	Dir   pathfind.Direction
	Form  Form
	Alive bool

	target     *pathfind.Cell
	prevTarget *pathfind.Cell
	path       []pathfind.Cell // last planned route, for rendering and tests
}

// Target returns the cell the ghost is heading for, if any.
func (g *Ghost) Target() (pathfind.Cell, bool) {
	if g.target == nil {
		return pathfind.Cell{}, false
	}
	return *g.target, true
}

// Path returns the route found by the latest AI pass.
func (g *Ghost) Path() []pathfind.Cell { return g.path }

func cellPtr(c pathfind.Cell) *pathfind.Cell { return &c }

// router finds ghost routes. *pathfind.Finder implements it.
type router interface {
	FindPath(start, goal pathfind.Cell, avoid []pathfind.Cell, penalty int) ([]pathfind.Cell, bool)
}

// brain runs the ghost AI pass against one board.
type brain struct {
	board  *Board
	finder router

	chaseRadius  int
	wanderRadius int
	cooperative  bool
	penalty      int

	patrolCursor int
}

// world is the part of the game state the AI reads.
type world struct {
	pacman pathfind.Cell
	megas  []pathfind.Cell // remaining mega pellets, row-major
	intn   func(n int) int
}

// pass plans one step for every ghost in index order. Paths found earlier
// in the pass are fed to later searches as cells to avoid, which spreads
// cooperating ghosts across alternative routes.
//
// pass panics if the router returns a route whose first step is not
// adjacent to the ghost.
func (b *brain) pass(ghosts []*Ghost, w world) {
	used := pathfind.NewUsedSectors()

	for i, g := range ghosts {
		// Ghosts inside a tunnel keep their heading until they come out.
		if b.board.IsTeleport(g.Pos) {
			if g.target != nil && b.board.IsTeleport(*g.target) {
				g.target = nil
			}
			continue
		}

		if !g.Alive && g.Pos == g.Spawn {
			g.Alive = true
			g.Form = Form(w.intn(int(formCount)))
			g.target = nil
		}

		var goal pathfind.Cell
		if g.Alive {
			goal = b.chooseTarget(i, len(ghosts), g, w)
		} else {
			goal = g.Spawn
		}

		var avoid []pathfind.Cell
		penalty := 0
		if b.cooperative {
			avoid = used.Cells()
			penalty = b.penalty
		}

		path, ok := b.finder.FindPath(g.Pos, goal, avoid, penalty)
		if !ok {
			// Unreachable target: hold this pass and pick another next time.
			g.Dir = pathfind.None
			g.path = nil
			g.target = nil
			continue
		}
		if b.cooperative {
			used.Add(path)
		}
		g.path = path

		dir, err := pathfind.DirectionTo(g.Pos, path)
		if err != nil {
			panic(fmt.Errorf("pacman: ghost %d route to %s: %w", i, goal, err))
		}
		g.Dir = dir
	}
}

// chooseTarget picks the goal of a live ghost: Pac-Man when close,
// otherwise a mega pellet patrol or a distant random floor cell.
// Patrols only happen while mega pellets outnumber the ghosts, and only for
// ghost indexes that have a pellet of their own.
func (b *brain) chooseTarget(i, ghostCount int, g *Ghost, w world) pathfind.Cell {
	if g.target != nil && *g.target == g.Pos {
		g.target = nil
	}

	switch {
	case g.Pos.Manhattan(w.pacman) < b.chaseRadius:
		g.target = cellPtr(w.pacman)
	case g.target != nil:
	case ghostCount >= len(w.megas), i >= len(w.megas):
		g.target = cellPtr(b.wander(g, w.intn))
	default:
		g.target = cellPtr(b.patrol(g, w.megas))
	}

	g.prevTarget = g.target
	return *g.target
}

// patrol walks a cursor shared by all ghosts over the remaining mega
// pellets, skipping the ghost's previous target.
func (b *brain) patrol(g *Ghost, megas []pathfind.Cell) pathfind.Cell {
	if b.patrolCursor >= len(megas) {
		b.patrolCursor = 0
	}
	if len(megas) == 1 {
		return megas[0]
	}
	for range megas {
		cand := megas[b.patrolCursor]
		b.patrolCursor = (b.patrolCursor + 1) % len(megas)
		if g.prevTarget == nil || cand != *g.prevTarget {
			return cand
		}
	}
	return megas[0]
}

// wander picks a random interior floor cell farther than wanderRadius.
// Small boards fall back to any other floor cell.
func (b *brain) wander(g *Ghost, intn func(int) int) pathfind.Cell {
	floors := b.board.Floors()
	var far []pathfind.Cell
	for _, c := range floors {
		if c.Manhattan(g.Pos) > b.wanderRadius {
			far = append(far, c)
		}
	}
	if len(far) == 0 {
		for _, c := range floors {
			if c != g.Pos {
				far = append(far, c)
			}
		}
	}
	if len(far) == 0 {
		return g.Pos
	}
	return far[intn(len(far))]
}
