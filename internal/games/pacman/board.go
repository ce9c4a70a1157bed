package pacman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/pathfind"
)

// ErrInvalidBoard reports a layout the game cannot be played on.
var ErrInvalidBoard = errors.New("pacman: invalid board")

// Layout runes.
const (
	runeWall       = '#'
	runePellet     = '.'
	runeMegaPellet = 'o'
	runeCherry     = '+'
	runePacman     = '@'
	runeGhost      = '$'
)

// Item is a collectible lying on a floor cell.
type Item uint8

const (
	ItemNone Item = iota
	ItemPellet
	ItemMegaPellet
	ItemCherry
)

// Board is the immutable, parsed form of a level layout.
type Board struct {
	layout      []string
	grid        *pathfind.Grid
	items       map[pathfind.Cell]Item
	pacSpawn    pathfind.Cell
	ghostSpawns []pathfind.Cell
	teleports   map[pathfind.Cell]bool
	floors      []pathfind.Cell
}

func isWall(r rune) bool { return r == runeWall }

// ParseBoard builds a board from layout rows.
// Open cells on the border are teleports; each needs an open partner on
// the opposite edge.
func ParseBoard(layout []string) (*Board, error) {
	grid := pathfind.ParseGrid(layout, isWall)
	w, h := grid.Width(), grid.Height()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidBoard)
	}

	b := &Board{
		layout:    layout,
		grid:      grid,
		items:     make(map[pathfind.Cell]Item),
		teleports: make(map[pathfind.Cell]bool),
	}

	spawns := 0
	for r, row := range layout {
		for c, ch := range []rune(row) {
			cell := pathfind.C(c, r)
			switch ch {
			case runePellet:
				b.items[cell] = ItemPellet
			case runeMegaPellet:
				b.items[cell] = ItemMegaPellet
			case runeCherry:
				b.items[cell] = ItemCherry
			case runePacman:
				b.pacSpawn = cell
				spawns++
			case runeGhost:
				b.ghostSpawns = append(b.ghostSpawns, cell)
			}
		}
	}
	if spawns != 1 {
		return nil, fmt.Errorf("%w: want exactly one %q, found %d", ErrInvalidBoard, runePacman, spawns)
	}
	if len(b.ghostSpawns) == 0 {
		return nil, fmt.Errorf("%w: no ghost spawn %q", ErrInvalidBoard, runeGhost)
	}

	for _, cell := range grid.EmptyCells() {
		if cell.Col == 0 || cell.Row == 0 || cell.Col == w-1 || cell.Row == h-1 {
			partner := b.opposite(cell)
			if !grid.Passable(partner) {
				return nil, fmt.Errorf("%w: teleport %s has no open partner at %s", ErrInvalidBoard, cell, partner)
			}
			b.teleports[cell] = true
			continue
		}
		b.floors = append(b.floors, cell)
	}
	return b, nil
}

// opposite maps a border cell to the cell on the far edge.
func (b *Board) opposite(c pathfind.Cell) pathfind.Cell {
	w, h := b.grid.Width(), b.grid.Height()
	switch {
	case c.Col == 0:
		return pathfind.C(w-1, c.Row)
	case c.Col == w-1:
		return pathfind.C(0, c.Row)
	case c.Row == 0:
		return pathfind.C(c.Col, h-1)
	default:
		return pathfind.C(c.Col, 0)
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.grid.Width() }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.grid.Height() }

// Grid returns the obstacle map ghosts search on.
func (b *Board) Grid() *pathfind.Grid { return b.grid }

// PacmanSpawn returns Pac-Man's start cell.
func (b *Board) PacmanSpawn() pathfind.Cell { return b.pacSpawn }

// GhostSpawns returns one start cell per ghost, row-major.
func (b *Board) GhostSpawns() []pathfind.Cell { return b.ghostSpawns }

// IsTeleport reports whether c is an open border cell.
func (b *Board) IsTeleport(c pathfind.Cell) bool { return b.teleports[c] }

// Floors returns open interior cells in row-major order.
func (b *Board) Floors() []pathfind.Cell { return b.floors }

// Items returns a fresh copy of the initial collectibles.
func (b *Board) Items() map[pathfind.Cell]Item {
	out := make(map[pathfind.Cell]Item, len(b.items))
	for c, it := range b.items {
		out[c] = it
	}
	return out
}

// Count returns how many items of kind the board starts with.
func (b *Board) Count(kind Item) int {
	n := 0
	for _, it := range b.items {
		if it == kind {
			n++
		}
	}
	return n
}

// Step returns the cell one move from c in dir, wrapping across the edges.
// ok is false when that cell is a wall.
func (b *Board) Step(c pathfind.Cell, dir pathfind.Direction) (next pathfind.Cell, ok bool) {
	next = c.Step(dir)
	w, h := b.grid.Width(), b.grid.Height()
	next.Col = (next.Col + w) % w
	next.Row = (next.Row + h) % h
	return next, b.grid.Passable(next)
}

// Plot renders the layout with path cells marked '*', start 'S' and goal 'G'.
// Items and spawns are drawn as floor so the path stands out.
func (b *Board) Plot(start, goal pathfind.Cell, path []pathfind.Cell) string {
	rows := make([][]rune, b.Height())
	for r := range rows {
		rows[r] = make([]rune, b.Width())
		for c := range rows[r] {
			if b.grid.Passable(pathfind.C(c, r)) {
				rows[r][c] = ' '
			} else {
				rows[r][c] = runeWall
			}
		}
	}

	mark := func(c pathfind.Cell, ch rune) {
		if b.grid.InBounds(c) {
			rows[c.Row][c.Col] = ch
		}
	}
	for _, c := range path {
		mark(c, '*')
	}
	mark(start, 'S')
	mark(goal, 'G')

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
